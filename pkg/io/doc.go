// Package io reads and writes step sequences as JSON files.
//
// # JSON Format
//
// A file holds one sequence exactly as [step.Sequence] marshals it:
//
//	{
//	  "algorithm": "binary-search",
//	  "input": {"values": [1, 3, 5], "target": 5, ...},
//	  "steps": [
//	    {"phase": "setup", "positions": {"lo": 0, "hi": 2}, ...},
//	    ...
//	  ]
//	}
//
// Exported files can be replayed without regenerating them, e.g. with
// "dsaviz play --load run.json", or shared with the web player.
//
// Decoding normalizes the steps through [step.NewSequence], so a file
// whose last step is not marked done still yields a well-formed sequence.
// The algorithm name is required.
package io
