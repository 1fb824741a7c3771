// Package domain contains the core entities of the ZCTA export: source
// features as read from the Census dataset and the relational records they are
// decomposed into (zip codes, tabulation areas, boundary points and bounding
// boxes). The types are free of storage and file-format concerns.
package domain
