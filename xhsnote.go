// Package xhsnote collects XiaoHongShu note pages into a local, deduplicated
// collection. It extracts the title, body text, topic tags and engagement
// counters from a rendered note document, keeps one record per page address
// and exports the collection as clipboard text, CSV or XLSX.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, xlsx/).
package xhsnote
