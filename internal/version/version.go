// internal/version/version.go
package version

// Version is the tool version reported by --version. Overridable at build
// time with -ldflags "-X dnabpe/internal/version.Version=...".
var Version = "0.2.0"
