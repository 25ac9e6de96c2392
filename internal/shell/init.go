package shell

import "fmt"

// InitScript generates the shell integration script. It defines the `wf`
// function: fuzzy-jump to the best-matching registered directory and record
// the visit so frequently used paths surface in stats.
//
// Designed to be used with: eval "$(wayfind init bash)"
func InitScript(shellName string) (string, error) {
	if !ValidShell(shellName) {
		return "", ShellError(shellName)
	}

	header := fmt.Sprintf("# wayfind shell init (%s)\n# Add to your shell config: eval \"$(wayfind init %s)\"\n\n", shellName, shellName)

	switch shellName {
	case Fish:
		return header + fishScript, nil
	default:
		return header + posixScript, nil
	}
}

const posixScript = `wf() {
    if [ $# -eq 0 ]; then
        wayfind
        return
    fi
    local dest
    dest="$(wayfind jump "$@")" || return
    cd "$dest" && wayfind visit "$dest"
}
`

const fishScript = `function wf
    if test (count $argv) -eq 0
        wayfind
        return
    end
    set -l dest (wayfind jump $argv); or return
    cd $dest; and wayfind visit $dest
end
`
