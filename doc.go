// Package htmlopt rewrites static HTML pages for faster image loading.
//
// # Quick Start
//
// Create an optimizer rooted at the site directory and run it:
//
//	opt, err := htmlopt.New(htmlopt.WithRoot("./site"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := opt.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Processed %d out of %d HTML files\n", report.Processed, report.Found)
//
// # Optimization Pass
//
// Each candidate page goes through these stages:
//
//  1. Every <img> tag without a loading attribute becomes a <picture>
//     element with a WebP <source> and a lazy-loaded fallback <img>
//  2. A <style> block is inserted before the first </head>
//  3. A <script> lazy loading polyfill is inserted before the first </body>
//  4. The original page is copied to <page>.backup, then replaced atomically
//
// Substitutions are textual. Pages are never parsed into a tree, so their
// formatting is preserved byte for byte outside of the rewritten tags.
//
// # Candidate Files
//
// By default the optimizer looks for a fixed list of top-level pages
// (index.html, about.html, 401.html, 404.html, home-copy.html, lab02.html,
// styleguide.html) plus every .html file directly inside work/. Use
// WithFiles and WithDir to describe another layout.
//
// # Error Handling
//
// Per-file failures never abort a run. They are reported in
// FileResult.Err and can be checked with errors.Is:
//
//	for _, r := range report.Results {
//	    if errors.Is(r.Err, htmlopt.ErrFileWrite) {
//	        // backup or overwrite failed, the page is unchanged
//	    }
//	}
//
// Only a failure to list candidate files (ErrDiscovery) is returned by Run.
package htmlopt
