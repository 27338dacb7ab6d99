package version

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"strings"
	"text/template"
)

// Set with -ldflags "-X github.com/NilFoundation/soldeploy/common/version.gitTag=..."
var (
	gitTag    string
	gitCommit string
)

const (
	unknownVersion = "<unknown>"
	unknownCommit  = "<unknown>"
)

var versionTmpl = template.Must(template.New("version").Parse(`{{ .Title }}
 Version:	{{ .Version }}
 OS/Arch: 	{{ .OS }}/{{ .Arch }}
 Go:	{{ .Go }}
 Git commit:	{{ .Commit }}`))

func BuildVersionString(appTitle string) string {
	ver := gitTag
	if ver == "" {
		ver = moduleVersion()
	}
	ver, _, _ = strings.Cut(ver, "-")

	buf := new(bytes.Buffer)
	if err := versionTmpl.Execute(buf, map[string]string{
		"Title":   appTitle,
		"Version": ver,
		"OS":      runtime.GOOS,
		"Arch":    runtime.GOARCH,
		"Go":      runtime.Version(),
		"Commit":  GetGitCommit(),
	}); err != nil {
		panic(err)
	}
	return buf.String()
}

// GetGitCommit falls back to the VCS information embedded by the Go toolchain.
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return unknownCommit
}

func moduleVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return unknownVersion
}
