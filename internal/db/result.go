package db

// FetchMode selects how a RowSet holds its rows.
type FetchMode int

const (
	// FetchAssoc maps column names to values.
	FetchAssoc FetchMode = iota
	// FetchNum keeps each row as a positional slice.
	FetchNum
	// FetchColumn keeps only the first column of every row.
	FetchColumn
)

func (m FetchMode) String() string {
	switch m {
	case FetchNum:
		return "num"
	case FetchColumn:
		return "column"
	default:
		return "assoc"
	}
}

// Result is one of *RowSet, AffectedCount or Empty.
type Result interface {
	Kind() StatementKind
}

// RowSet is the full result of a read. Only the field matching Mode is filled.
type RowSet struct {
	Mode    FetchMode
	Columns []string
	Assoc   []map[string]any
	Rows    [][]any
	Column  []any
}

func (*RowSet) Kind() StatementKind { return StatementRead }

// Len is the number of rows, whatever the mode.
func (r *RowSet) Len() int {
	switch r.Mode {
	case FetchNum:
		return len(r.Rows)
	case FetchColumn:
		return len(r.Column)
	default:
		return len(r.Assoc)
	}
}

// AffectedCount is the number of rows a write touched.
type AffectedCount int64

func (AffectedCount) Kind() StatementKind { return StatementWrite }

// Empty is returned for statements that are neither reads nor writes.
type Empty struct{}

func (Empty) Kind() StatementKind { return StatementOther }
