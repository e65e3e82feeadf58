// Package htmltable provides a TableParser for saved registration-portal pages.
// It decodes the page permissively, finds the data table by element id and
// returns each row as trimmed cell text.
package htmltable
