package browser

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

const (
	// SchemeBindingName is the CDP binding the page calls when its
	// prefers-color-scheme media query flips.
	SchemeBindingName = "__uxthemeSchemeChanged"

	// fontStyleMarker tags the <style> element holding a font-face so it
	// can be replaced instead of duplicated.
	fontStyleMarker = "data-uxtheme-font"
)

// prefersDarkScript evaluates to true when the page reports a dark preference.
const prefersDarkScript = `(function() {
  return !!(window.matchMedia && window.matchMedia('(prefers-color-scheme: dark)').matches);
})()`

// schemeListenerScript forwards prefers-color-scheme changes to the CDP
// binding. Installed once per document.
const schemeListenerScript = `(function() {
  if (!window.matchMedia || window.__uxthemeSchemeListener) return;
  var mq = window.matchMedia('(prefers-color-scheme: dark)');
  window.__uxthemeSchemeListener = function(e) {
    if (typeof window.%[1]s === 'function') window.%[1]s(e.matches ? 'dark' : 'light');
  };
  if (mq.addEventListener) {
    mq.addEventListener('change', window.__uxthemeSchemeListener);
  } else if (mq.addListener) {
    mq.addListener(window.__uxthemeSchemeListener);
  }
})();`

// setAttributeScript sets an attribute on <html>. Placeholders are JSON
// string literals.
const setAttributeScript = `document.documentElement.setAttribute(%s, %s);`

// setPropertyScript sets a custom property on <html> style.
const setPropertyScript = `document.documentElement.style.setProperty(%s, %s);`

// fontFaceScript replaces or appends the <style> element for one family.
const fontFaceScript = `(function() {
  var family = %[1]s;
  var parent = document.head || document.documentElement;
  var style = parent.querySelector('style[%[3]s="' + family + '"]');
  if (!style) {
    style = document.createElement('style');
    style.setAttribute('%[3]s', family);
    parent.appendChild(style);
  }
  style.textContent = %[2]s;
})();`

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// SetAttributeScript returns the script setting a root attribute.
func SetAttributeScript(name, value string) string {
	return fmt.Sprintf(setAttributeScript, jsString(name), jsString(value))
}

// SetPropertyScript returns the script setting a root custom property.
func SetPropertyScript(name, value string) string {
	return fmt.Sprintf(setPropertyScript, jsString(name), jsString(value))
}

// FontFaceScript returns the script installing a font-face declaration.
func FontFaceScript(face entity.FontFace) string {
	return fmt.Sprintf(fontFaceScript, jsString(face.Family), jsString(face.CSS()), fontStyleMarker)
}

// SchemeListenerScript returns the script wiring matchMedia changes to the binding.
func SchemeListenerScript() string {
	return fmt.Sprintf(schemeListenerScript, SchemeBindingName)
}
