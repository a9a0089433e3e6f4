package intake

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/lumora-app/intake.Version=...".
var Version = "0.2.0"
