package assets

// DefaultFragmentName names the built-in lazy loading fragment pair.
const DefaultFragmentName = "lazyload"

// WrapStyle wraps CSS in a <style> element preceded by a newline.
func WrapStyle(css string) string {
	return "\n<style>\n" + css + "</style>"
}

// WrapScript wraps JavaScript in a <script> element preceded by a newline.
func WrapScript(js string) string {
	return "\n<script>\n" + js + "</script>"
}
