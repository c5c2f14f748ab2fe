// Package tenderscan locates SEC tender-offer filings (form SC TO-I) for a
// list of company identifiers, optionally keeps only those whose complete
// submission text mentions an odd lot provision, and emits the matches as
// flat records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package tenderscan
