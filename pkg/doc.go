// Package pkg provides the core libraries for seqdraw.
//
// # Overview
//
// seqdraw writes sequence diagrams as draw.io documents. The input is a
// resolved layout: every lifeline, activation and message already carries
// its final coordinates. The pkg directory is organized as follows:
//
//  1. [layout] - The resolved layout model and its JSON hand-off format
//  2. [config] - Position and style options loaded from TOML
//  3. [drawio] - Document assembly, styles, geometry and XML encoding
//  4. [errors] - Structured error codes shared by all packages
//  5. [observability] - Optional generation hooks
//
// # Architecture
//
// The data flow through seqdraw:
//
//	layout.json + seqdraw.toml
//	         ↓
//	    [layout] / [config] packages (decode + validate)
//	         ↓
//	    [drawio] package (ids, styles, geometry, assembly)
//	         ↓
//	    .drawio XML file
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/seqdraw/pkg/config"
//	    "github.com/matzehuels/seqdraw/pkg/drawio"
//	    "github.com/matzehuels/seqdraw/pkg/layout"
//	)
//
//	cfg, _ := config.Load("seqdraw.toml")
//	m, _ := layout.ImportJSON("login.json")
//	ok := drawio.New(cfg).Generate(context.Background(), m, "login.drawio")
package pkg
