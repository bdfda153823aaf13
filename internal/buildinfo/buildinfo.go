package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Name is the program name shown in window titles and log banners.
const Name = "Orrery"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title is the window title, e.g. "Orrery (v1.2.0)".
func Title() string {
	return Name + " (" + Short() + ")"
}

// Banner is the startup log line.
func Banner() string {
	return Name + " " + Short() + " commit=" + Commit + " date=" + Date
}
