// Package pipeline implements the text transformations of an HTML
// optimization pass.
//
// The pipeline treats each document as an opaque string and applies, in order:
//   - <img> tag rewriting into <picture> blocks with a WebP source and
//     loading="lazy" (regular-expression based, attribute-order sensitive)
//   - style block injection before the first </head>
//   - script block injection before the first </body>
//
// Injection is a silent no-op when the marker is missing. Audit uses a real
// HTML tokenizer, but only to report <img> tags the pattern could not reach;
// it never changes the output.
package pipeline
