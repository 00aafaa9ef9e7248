package scan

// Options configures one scan run. A single value is built by the caller
// and passed by reference into the walker and processor constructors; no
// component reads ambient global state.
type Options struct {
	Check     bool // Re-hash even when the stored timestamp matches
	Force     bool // Allow overwriting tags of corrupted/backdated/invalid files
	DryRun    bool // Never write attributes (takes precedence over Force)
	Print     bool // Emit coreutils-style "<hex>  <name>" lines instead of states
	Recursive bool // Descend into directories
	Untag     bool // Remove both attributes instead of checking
	Verbosity int  // -1 critical only .. 2 debug detail lines
}
