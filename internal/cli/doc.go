// Package cli implements the interactive command interpreter for region-trace.
//
// The interpreter reads one command per line, splits it on whitespace and
// dispatches on the first token. Every command operates on a Session, which owns
// the source image, the working copy that region growing reads, the current
// tolerances and the list of grown regions with their perimeters.
//
// # Commands
//
// Segmentation:
//   - region: grow regions from one or more seeds and trace their perimeters
//   - tolerance: show or set the seed and step tolerances
//   - blur: blur the working image before growing
//   - clean: discard all regions and restore the working image
//
// Perimeters:
//   - smooth: smooth every perimeter
//   - fillgaps: connect smoothed perimeters back into 8-connected loops
//
// Output:
//   - display: draw regions and perimeters over the image and save it
//   - zoom: save an enlarged crop around one region
//   - info: print per-region statistics
//   - store: save regions and perimeters as text or SQLite
//
// # Error Handling
//
// A failed command prints "error: <message>" and the session continues with its
// state unchanged. Only a read error on the input ends Run with an error.
//
// # Usage
//
//	cache := imaging.NewImageCache()
//	src, err := cache.Open(path)
//	...
//	session := cli.NewSession(cache, src, cfg)
//	interp := cli.New(session, cfg, os.Stdout)
//	if err := interp.Run(ctx, os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
package cli
