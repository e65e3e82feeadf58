// Package services implements the driving port interfaces.
// ExtractorService turns saved portal pages into a weekly schedule;
// ReportService drives a whole run from document listing to written artifacts.
package services
