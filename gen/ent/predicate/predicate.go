// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ScanFile is the predicate function for scanfile builders.
type ScanFile func(*sql.Selector)

// VerifyJob is the predicate function for verifyjob builders.
type VerifyJob func(*sql.Selector)
