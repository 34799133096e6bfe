// Package nav сопоставляет маршрут (#/employees) с экраном и перед
// активацией прогоняет его через guard сессии.
package nav

import "strings"

type View string

const (
	Home        View = "home"
	Register    View = "register"
	Verify      View = "verify"
	Login       View = "login"
	Dashboard   View = "dashboard"
	Profile     View = "profile"
	Accounts    View = "accounts"
	Departments View = "departments"
	Employees   View = "employees"
	Requests    View = "requests"
)

const DefaultView = Dashboard

var allViews = []View{Home, Register, Verify, Login, Dashboard, Profile, Accounts, Departments, Employees, Requests}

// protected — только для вошедших, adminOnly — только для админа
var (
	protected = map[View]struct{}{Profile: {}, Requests: {}, Accounts: {}, Departments: {}, Employees: {}}
	adminOnly = map[View]struct{}{Accounts: {}, Departments: {}, Employees: {}}
)

const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
	ReasonUnknownView     = "unknown view"
)

// Guard — два предиката, которые роутер берёт у сессии.
type Guard interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

type Decision struct {
	Requested  View   `json:"requested"`
	View       View   `json:"view"`
	Route      string `json:"route"`
	Redirected bool   `json:"redirected"`
	Reason     string `json:"reason,omitempty"`
}

type Router struct {
	guard    Guard
	active   map[View]bool
	onEnter  map[View]func()
	route    string
	lastSeen Decision
}

func New(guard Guard) *Router {
	r := &Router{
		guard:   guard,
		active:  make(map[View]bool, len(allViews)),
		onEnter: map[View]func(){},
	}
	for _, v := range allViews {
		r.active[v] = false
	}
	return r
}

// OnActivate регистрирует побочный эффект активации экрана (рендер и т.п.).
func (r *Router) OnActivate(v View, fn func()) {
	r.onEnter[v] = fn
}

// ParseRoute превращает "#/employees", "/employees" или "employees" в имя
// экрана. Пустой и корневой маршрут дают "".
func ParseRoute(route string) View {
	route = strings.TrimSpace(route)
	route = strings.TrimPrefix(route, "#")
	route = strings.Trim(route, "/")
	if i := strings.IndexAny(route, "/?"); i >= 0 {
		route = route[:i]
	}
	return View(strings.ToLower(route))
}

func RouteFor(v View) string {
	if v == DefaultView {
		return "#/"
	}
	return "#/" + string(v)
}

func Known(v View) bool {
	for _, k := range allViews {
		if k == v {
			return true
		}
	}
	return false
}

// Resolve — чистая функция guard'а: без побочных эффектов, один и тот же
// ответ для одних и тех же входов.
func (r *Router) Resolve(requested View) Decision {
	d := Decision{Requested: requested}
	authed := r.guard != nil && r.guard.IsAuthenticated()
	admin := authed && r.guard.IsAdmin()

	switch {
	case isProtected(requested) && !authed:
		d.View, d.Redirected, d.Reason = Login, true, ReasonUnauthenticated
	case isAdminOnly(requested) && !admin:
		d.View, d.Redirected, d.Reason = DefaultView, true, ReasonForbidden
	case requested == "":
		d.View = DefaultView
	case !Known(requested):
		d.View, d.Redirected, d.Reason = DefaultView, true, ReasonUnknownView
	default:
		d.View = requested
	}
	d.Route = RouteFor(d.View)
	return d
}

// Navigate — обработчик события смены маршрута: guard, затем активация.
func (r *Router) Navigate(route string) Decision {
	d := r.Resolve(ParseRoute(route))
	r.route = d.Route
	r.Activate(d.View)
	r.lastSeen = d
	return d
}

// Start вычисляет guard один раз при запуске для начального маршрута.
func (r *Router) Start(route string) Decision {
	return r.Navigate(route)
}

// Activate делает экран единственным активным.
func (r *Router) Activate(v View) {
	if !Known(v) {
		v = DefaultView
	}
	for k := range r.active {
		r.active[k] = false
	}
	r.active[v] = true
	if fn := r.onEnter[v]; fn != nil {
		fn()
	}
}

func (r *Router) Active() View {
	for v, on := range r.active {
		if on {
			return v
		}
	}
	return ""
}

func (r *Router) IsActive(v View) bool {
	return r.active[v]
}

func (r *Router) Route() string {
	return r.route
}

func (r *Router) Last() Decision {
	return r.lastSeen
}

func isProtected(v View) bool {
	_, ok := protected[v]
	return ok
}

func isAdminOnly(v View) bool {
	_, ok := adminOnly[v]
	return ok
}
