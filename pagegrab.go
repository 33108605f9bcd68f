// Package pagegrab fetches a single web page and extracts structured data
// from its HTML: title, plain text, links, images, tables, markdown and the
// main article.
//
// This package contains domain types, interfaces and the table
// normalization rules, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, etree/, re2/, http/).
package pagegrab
