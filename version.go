package eerolang

// Version and BuildDate identify the interpreter build. BuildDate may be
// overridden at link time with -ldflags "-X ...BuildDate=...".
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
