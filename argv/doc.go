// Package argv turns a raw argument vector into a structured record without
// any option schema.
//
// Options are recognised purely by shape: any token that starts with a dash.
// A value is whatever non-option token immediately follows an option.
//
//	res, err := argv.Parse([]string{"app.py", "ls", "-lar", "42"})
//	// res.App == "app", res.Command == "ls"
//	// options: -l => null, -a => null, -r => 42
//
// The pipeline is a single forward pass:
//
//   - Normalize expands clustered short options ("-lar" -> "-l", "-a", "-r").
//   - IsOption classifies a token as option or positional.
//   - Coerce converts an option value to int, float or string.
//   - Parse strips the program name, picks the command and pairs options
//     with their values.
//
// Known quirks, kept on purpose:
//
//   - Coerce only produces a float for exactly one fractional digit; "3.14"
//     stays a string.
//   - When an option repeats with values, the second value is stored first:
//     "-v a -v b" yields [b, a], and a third value is appended: [b, a, c].
//   - The last token is never reported as unassociated.
//
// Parse is safe for concurrent use.
package argv
