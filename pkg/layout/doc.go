// Package layout defines the resolved layout model of a sequence diagram.
//
// A [Model] is produced upstream of drawing: the textual description has
// already been parsed and every lifeline, activation and message carries
// its final coordinates. This package only describes that hand-off, reads
// it from JSON and checks it for structural consistency. It never computes
// positions itself.
//
// # JSON Format
//
//	{
//	  "total_width": 420,
//	  "lifeline_box_width": 80,
//	  "lifeline_box_height": 40,
//	  "lifeline_total_height": 300,
//	  "description": {"text": "Login flow", "used": true},
//	  "lifelines": [
//	    {"name": "A", "center_x": 100, "start_y": 80},
//	    {"name": "B", "center_x": 300, "start_y": 80}
//	  ],
//	  "activations": {"1": [{"top_y": 150, "bottom_y": 210}]},
//	  "messages": [
//	    {"kind": "request", "text": "call()", "start_x": 100, "end_x": 300, "middle_y": 150}
//	  ]
//	}
//
// Coordinates may be given as JSON numbers or as decimal strings. They are
// held as [decimal.Decimal] values so that derived geometry is computed
// exactly and always renders in plain (non-exponential) notation.
package layout
