// Package domain defines the core business entities for coursesched.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - RawDocument: Bytes of one saved portal page
//   - CourseRecord: One scheduled course section
//   - WeeklySchedule: Records grouped into fixed weekday buckets
//   - ColumnIndex: Header labels resolved to positional indices
//   - Diagnostic: Why a file or row was skipped
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package
package domain
