package pkg

// set with -ldflags at build time
var (
	Version = "dev"
	Commit  = "none"
)
