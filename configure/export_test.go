package configure

// Exported aliases for testing internal functions from
// the configure_test package.

// Region is an alias for region.
type Region = region

// PrivateRegionsForTest exposes privateRegions.
var PrivateRegionsForTest = privateRegions

// SplitTerminatorForTest exposes splitTerminator.
var SplitTerminatorForTest = splitTerminator

// RegionBounds returns the start and end offsets of re.
func RegionBounds(re Region) (int, int) {
	return re.start, re.end
}
