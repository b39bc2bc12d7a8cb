// Package sprintreport generates Vianeo Sprint Executive Reports as DOCX
// documents from a structured content record.
//
// # Quick Start
//
// Load a content record, generate, and write the result:
//
//	content, err := sprintreport.LoadContent("irdose.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := sprintreport.NewGenerator().Generate(ctx, content)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(res.Filename, res.Document, 0644)
//
// The filename is derived from the project name and report date, e.g.
// "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx".
//
// # Generation Pipeline
//
//  1. Validation: style values, required fields, the five evaluation
//     dimensions and their weights, status labels and the report date.
//  2. Assembly: a DocumentTree of seven sections whose blocks reference
//     style tokens rather than literal colors and sizes.
//  3. Rendering: tokens are resolved and blocks are handed to a Writer
//     (DOCX by default) in document order.
//
// Any failure aborts before output is produced. Assembling the same
// content and style twice yields identical trees and identical bytes.
//
// # Styles
//
// A StyleConfig maps tokens such as "primaryBlue" or "bodySize" to
// literal values. Start from DefaultStyle and apply overrides:
//
//	style, err := sprintreport.DefaultStyle().Merge(map[string]string{
//	    "primaryBlue": "003366",
//	    "fontFamily":  "Calibri",
//	})
//	gen := sprintreport.NewGenerator(sprintreport.WithStyle(style))
//
// # Errors
//
// Failures are reported as *MissingFieldError, *UnknownStatusError,
// *UnknownStyleTokenError or *SerializationError, each matching its
// sentinel with errors.Is.
package sprintreport
