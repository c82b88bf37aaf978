package gotable

const (
	DefaultCurrentPage   = 1
	DefaultResultSet     = 10
	DefaultPageNeighbors = 2

	// MaxResultSet caps page sizes read from config files, query strings and
	// the browser's grow key. View.SetResultSet itself accepts any positive
	// size.
	MaxResultSet = 1000
)

// NormalizeResultSet maps a requested page size into [1, MaxResultSet].
// Non-positive sizes mean "unset" and fall back to DefaultResultSet.
func NormalizeResultSet(resultSet int) int {
	switch {
	case resultSet <= 0:
		return DefaultResultSet
	case resultSet > MaxResultSet:
		return MaxResultSet
	default:
		return resultSet
	}
}
