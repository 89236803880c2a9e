package web

import (
	"github.com/gin-gonic/gin"
)

// CSRFKey is the gin context key holding the form token.
const CSRFKey = "csrf"

type Context struct {
	Data any
	Err  error
	CSRF string
	Path string
	c    *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		CSRF: c.GetString(CSRFKey),
		Path: c.Request.URL.Path,
		c:    c,
	}
}

func (s *Context) WithData(d any) *Context {
	s.Data = d
	return s
}

func (s *Context) WithErr(err error) *Context {
	s.Err = err
	return s
}

func (s *Context) GinContext() *gin.Context {
	return s.c
}
