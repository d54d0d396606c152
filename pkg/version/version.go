package version

// Current is the version of the reuselint binary. It is overridden at
// build time via -ldflags "-X github.com/reuselint/reuselint/pkg/version.Current=v1.2.3".
var Current = "dev"

// AppName is the canonical name used in help output and telemetry.
const AppName = "reuselint"

// SpecVersion is the version of the REUSE Specification this tool
// checks against. It appears in lint output and help text.
const SpecVersion = "3.3"
