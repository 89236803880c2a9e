package template

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	layoutsDir  = "layouts"
	partialsDir = "partials"
	viewsDir    = "views"
	ext         = ".html"
)

// Context is the value every view is rendered with.
type Context interface {
	GinContext() *gin.Context
}

type Builder[T Context] interface {
	Build(name string) *Template[T]
}

type Manager[T Context] struct {
	re      multitemplate.Renderer
	fsys    fs.FS
	helpers []any
	views   []*Views[T]
	names   map[string]bool
}

func NewManager[T Context](re multitemplate.Renderer, fsys fs.FS) *Manager[T] {
	return &Manager[T]{
		re:    re,
		fsys:  fsys,
		names: map[string]bool{},
	}
}

// WithHelper exposes every exported method of h to all views,
// e.g. MakeMenu becomes makeMenu.
func (s *Manager[T]) WithHelper(h any) *Manager[T] {
	s.helpers = append(s.helpers, h)
	return s
}

func (s *Manager[T]) RegisterViews(pattern string) (*Views[T], error) {
	matches, err := fs.Glob(s.fsys, path.Join(viewsDir, pattern+ext))
	if err != nil {
		return nil, errors.Wrapf(err, "bad views pattern %v", pattern)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no views found for pattern %v", pattern)
	}
	v := &Views[T]{
		tm: s,
	}
	for _, m := range matches {
		v.names = append(v.names, strings.TrimSuffix(strings.TrimPrefix(m, viewsDir+"/"), ext))
	}
	s.views = append(s.views, v)
	return v, nil
}

func (s *Manager[T]) MustRegisterViews(pattern string) *Views[T] {
	v, err := s.RegisterViews(pattern)
	if err != nil {
		panic(err)
	}
	return v
}

// Init parses all registered views and adds them to the renderer.
func (s *Manager[T]) Init() error {
	partials, err := fs.Glob(s.fsys, path.Join(partialsDir, "*"+ext))
	if err != nil {
		return errors.Wrap(err, "failed to list partials")
	}
	for _, v := range s.views {
		fm := s.funcMap(v.helpers)
		for _, n := range v.names {
			var files []string
			if v.layout != "" {
				files = append(files, path.Join(layoutsDir, v.layout+ext))
			}
			files = append(files, partials...)
			files = append(files, path.Join(viewsDir, n+ext))
			t, err := template.New(path.Base(files[0])).Funcs(fm).ParseFS(s.fsys, files...)
			if err != nil {
				return errors.Wrapf(err, "failed to parse view %v", n)
			}
			key := v.key(n)
			s.re.Add(key, t)
			s.names[key] = true
			log.Debugf("registered view %v", key)
		}
	}
	log.Infof("registered %v views", len(s.names))
	return nil
}

func (s *Manager[T]) funcMap(extra []any) template.FuncMap {
	fm := template.FuncMap{}
	for _, h := range append(append([]any{}, s.helpers...), extra...) {
		v := reflect.ValueOf(h)
		t := v.Type()
		for i := 0; i < t.NumMethod(); i++ {
			fm[funcName(t.Method(i).Name)] = v.Method(i).Interface()
		}
	}
	return fm
}

func funcName(method string) string {
	r := []rune(method)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

type Views[T Context] struct {
	tm      *Manager[T]
	names   []string
	layout  string
	helpers []any
}

func (s *Views[T]) WithHelper(h any) *Views[T] {
	s.helpers = append(s.helpers, h)
	return s
}

func (s *Views[T]) WithLayout(name string) Builder[T] {
	s.layout = name
	return s
}

func (s *Views[T]) key(name string) string {
	if s.layout == "" {
		return name
	}
	return s.layout + "/" + name
}

func (s *Views[T]) Build(name string) *Template[T] {
	return &Template[T]{
		tm:   s.tm,
		name: s.key(name),
	}
}

type Template[T Context] struct {
	tm   *Manager[T]
	name string
}

func (s *Template[T]) HTML(code int, ctx T) {
	c := ctx.GinContext()
	if !s.tm.names[s.name] {
		log.Errorf("view %v is not registered", s.name)
		c.String(http.StatusInternalServerError, "view not found")
		return
	}
	c.HTML(code, s.name, ctx)
}
