package version

// At build time, these are replaced with the released version using the -X linker flag
var (
	// Version is the version number of the time-elapsed build that is running.
	Version = "0.0.0"

	// BuildDate is the date the executable was built.
	BuildDate string
)
