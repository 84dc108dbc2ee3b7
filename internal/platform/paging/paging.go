package paging

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params es la ventana pedida por los listados de admin (?page=&limit=).
type Params struct {
	Page  int
	Limit int
}

// FromRequest lee page/limit del query string. Valores vacíos, no numéricos o < 1
// caen a los defaults.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()
	return Params{
		Page:  positiveOr(q.Get("page"), DefaultPage),
		Limit: positiveOr(q.Get("limit"), DefaultLimit),
	}
}

// Skip es la cantidad de registros a saltear antes de la página pedida.
// Si (page-1)*limit no entra en un int se satura a math.MaxInt: la página
// queda más allá del final y el listado sale vacío.
func (p Params) Skip() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages = ceil(total / limit), sin sumar antes de dividir.
func (p Params) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total-1)/int64(p.Limit) + 1)
}

// Window recorta [Skip, Skip+Limit) sobre un largo n; sirve a los repos en memoria.
func (p Params) Window(n int) (start, end int) {
	start = min(p.Skip(), n)
	if p.Limit >= n-start {
		return start, n
	}
	return start, start + p.Limit
}

// CurrentPage devuelve page tal como llegó en el query string (sin validar);
// si no vino, el default numérico.
func CurrentPage(r *http.Request) any {
	q := r.URL.Query()
	if q.Has("page") {
		return q.Get("page")
	}
	return DefaultPage
}

func positiveOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
