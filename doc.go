// Package cmdparse parses command lines against a declarative schema of
// options, and reports how the arguments decompose into option values and
// positional parameters, or why they don't.
//
// For example:
//	cmd := cmdparse.MustCompile(cmdparse.Schema{
//	    Positional: &cmdparse.Positional{Params: "FILE..."},
//	    Categories: []cmdparse.Category{{Options: []cmdparse.Option{
//	        {Name: "verbose", Short: "v", Long: "verbose", Kind: cmdparse.Flag},
//	        {Name: "level", Short: "l", Kind: cmdparse.Value, DataType: cmdparse.DataTypeInt},
//	        {Name: "pair", Long: "pair", Kind: cmdparse.List, Cardinality: cmdparse.Exactly(2)},
//	    }}},
//	})
//	r := cmd.Parse(os.Args[1:])
//	if !r.Ok() {
//	    cmdparse.WriteErrors(os.Stderr, "prog", r.Errors)
//	}
//
// Arguments are normalized first: -abc is -a -b -c, and --key=value and
// -k=value are split in two. Options are then matched left to right. -h and
// --help end parsing with ShowUsage, and "--" sends everything after it to the
// positional parameters. Parse failures are returned in the Result, never as
// errors; only a contradictory schema is an error, from Compile.
//
// Schemas can also be loaded from YAML, TOML or HCL, see Load.
package cmdparse
