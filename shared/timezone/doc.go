// Package timezone provides timezone utilities for the application.
//
// Reservation dates are date-only values pinned to the facility's local
// timezone, so date comparisons in the codebase go through this package
// rather than the raw time package.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Date-only values for availability and cancellation-fee math:
//     today := timezone.Today()                // Midnight today in app timezone
//     day := timezone.DateOnly(usage.UsageDate)
//
//  3. Parsing and formatting in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2026-04-01")
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  4. Getting the timezone location:
//     loc := timezone.GetLocation()
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Tokyo", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
