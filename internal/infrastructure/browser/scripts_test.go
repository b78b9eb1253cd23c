package browser

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

// stubDOM is the smallest document the generated scripts touch.
const stubDOM = `
function makeElement(tag) {
  return {
    tagName: tag,
    attrs: {},
    textContent: '',
    setAttribute: function(n, v) { this.attrs[n] = String(v); },
    getAttribute: function(n) { return this.attrs.hasOwnProperty(n) ? this.attrs[n] : null; }
  };
}
var root = makeElement('html');
root.style = { props: {}, setProperty: function(n, v) { this.props[n] = v; } };
var head = makeElement('head');
head.children = [];
head.appendChild = function(c) { this.children.push(c); };
head.querySelector = function(sel) {
  var m = /^style\[([^=]+)="(.*)"\]$/.exec(sel);
  if (!m) return null;
  for (var i = 0; i < this.children.length; i++) {
    if (this.children[i].getAttribute(m[1]) === m[2]) return this.children[i];
  }
  return null;
};
var listeners = [];
var dark = false;
var window = {
  matchMedia: function(q) {
    return {
      matches: q.indexOf('dark') !== -1 ? dark : !dark,
      addEventListener: function(type, cb) { if (type === 'change') listeners.push(cb); }
    };
  }
};
var document = {
  documentElement: root,
  head: head,
  createElement: makeElement
};
`

func newVM(t *testing.T) *sobek.Runtime {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(stubDOM)
	require.NoError(t, err)
	return vm
}

func eval(t *testing.T, vm *sobek.Runtime, src string) sobek.Value {
	t.Helper()
	v, err := vm.RunString(src)
	require.NoError(t, err, src)
	return v
}

func TestSetAttributeScript(t *testing.T) {
	vm := newVM(t)

	eval(t, vm, SetAttributeScript(entity.ThemeAttribute, "dark"))

	assert.Equal(t, "dark", eval(t, vm, `root.attrs['data-theme']`).String())
}

func TestSetPropertyScript_EscapesLiterally(t *testing.T) {
	vm := newVM(t)
	value := `url("https://example.com/it's.svg")`

	eval(t, vm, SetPropertyScript(entity.PropertyLogoURL, value))

	assert.Equal(t, value, eval(t, vm, `root.style.props['--custom-logo-url']`).String())
}

func TestFontFaceScript_ReplacesSameFamily(t *testing.T) {
	vm := newVM(t)

	eval(t, vm, FontFaceScript(entity.NewCustomFontFace("https://a.example/f.woff2")))
	eval(t, vm, FontFaceScript(entity.NewCustomFontFace("https://b.example/f.woff2")))

	assert.Equal(t, int64(1), eval(t, vm, `head.children.length`).ToInteger())
	css := eval(t, vm, `head.children[0].textContent`).String()
	assert.Contains(t, css, "url('https://b.example/f.woff2') format('woff2')")
	assert.Contains(t, css, "font-display: swap;")
	assert.Equal(t, "CustomFont", eval(t, vm, `head.children[0].attrs['data-uxtheme-font']`).String())
}

func TestPrefersDarkScript(t *testing.T) {
	vm := newVM(t)
	assert.False(t, eval(t, vm, prefersDarkScript).ToBoolean())

	eval(t, vm, `dark = true`)
	assert.True(t, eval(t, vm, prefersDarkScript).ToBoolean())
}

func TestSchemeListenerScript_CallsBindingOnce(t *testing.T) {
	vm := newVM(t)
	eval(t, vm, `var calls = []; window.`+SchemeBindingName+` = function(p) { calls.push(p); };`)

	eval(t, vm, SchemeListenerScript())
	eval(t, vm, SchemeListenerScript())
	require.Equal(t, int64(1), eval(t, vm, `listeners.length`).ToInteger())

	eval(t, vm, `listeners[0]({matches: true}); listeners[0]({matches: false});`)

	assert.Equal(t, []any{"dark", "light"}, eval(t, vm, `calls`).Export())
}

func TestDetector_NilPageUnavailable(t *testing.T) {
	d := NewDetector(nil)

	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)
	assert.Equal(t, 100, d.Priority())
}

func TestPage_ClosedRejectsWrites(t *testing.T) {
	p := &Page{cancel: func() {}}
	p.Close()
	p.Close()

	assert.ErrorIs(t, p.Evaluate("1", nil), ErrClosed)
	assert.False(t, NewDetector(p).Available())
}
