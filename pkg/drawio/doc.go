// Package drawio assembles sequence diagrams into draw.io documents.
//
// The input is a resolved [layout.Model]; every coordinate is final. The
// package turns each element into one UserObject-wrapped cell with exact
// geometry and a style string, and writes the result as draw.io XML.
//
// # Document Structure
//
// A generated document always starts with the two structural cells "0"
// and "1", followed by one node per element in a fixed order:
//
//  1. the description (when used)
//  2. lifelines, in input order
//  3. activations, lifeline by lifeline
//  4. messages, in input order
//
// Every element cell has parent "1".
//
// # Styles
//
// Style strings are built from an ordered key list per element kind, so
// identical input always produces byte-identical styles. Unset overrides
// from [config.Style] are left out entirely.
//
// # Self Calls
//
// A self call is drawn as an edge whose source and target both sit on the
// start x, with two waypoints at the outer x:
//
//	(startX, topY) → (endX, topY) → (endX, bottomY) → (startX, bottomY)
//
// # Usage
//
//	g := drawio.New(cfg, drawio.WithLogger(logger))
//	if ok := g.Generate(ctx, model, "login.drawio"); !ok {
//	    // the output file must not be trusted
//	}
//
// A [Generator] holds no per-run state: identifier counters and the run
// timestamp are created on each call.
package drawio
