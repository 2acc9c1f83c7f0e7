// Package normalisers provides implementations of the Normaliser interface
// for clinical trial XML documents. Each normaliser implements one
// conversion mode and turns a raw document into a table row.
//
//   - xmltree: element tree parsing shared by the normalisers
//   - trial: tag set extraction with textblock unwrapping (tagged mode)
//   - rawxml: whole-document conversion with attributes (raw mode)
package normalisers
