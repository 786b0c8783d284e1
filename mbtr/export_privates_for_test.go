package mbtr

// Test-only exports of unexported ranking helpers.
var (
	K2RankForTest = k2Rank
	K3RankForTest = k3Rank

	CombinationCountForTest = combinationCount
)
