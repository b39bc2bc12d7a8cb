// Package docx writes and inspects WordprocessingML (.docx) packages.
//
// The Builder accumulates body content (paragraphs, tables, page breaks)
// and a page footer, then serializes the OOXML parts into a zip package
// with fixed timestamps so identical input yields identical bytes.
//
// Inspect reads a package back into an ordered Outline of headings,
// paragraphs, tables and page breaks. It understands what the Builder
// writes and the common subset of documents produced by word processors.
package docx
