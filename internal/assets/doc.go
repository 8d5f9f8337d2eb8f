// Package assets provides the CSS and JavaScript fragments injected into
// optimized HTML pages.
//
// Fragments are embedded at compile time and organized by type:
//
//	fragments/
//	├── {name}.css    # style fragment, wrapped in <style>
//	└── {name}.js     # script fragment, wrapped in <script>
//
// The default fragment pair is "lazyload": an opacity transition for lazily
// loaded images and a polyfill that falls back to an IntersectionObserver
// when the browser lacks native lazy loading.
//
// # Security
//
// Fragment names are validated to prevent path traversal.
package assets
