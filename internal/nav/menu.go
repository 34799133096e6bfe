package nav

type Link struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Menu — пункты навигации для текущего состояния сессии.
func Menu(g Guard) []Link {
	if g == nil || !g.IsAuthenticated() {
		return []Link{
			{Label: "Login", Route: RouteFor(Login)},
			{Label: "Register", Route: RouteFor(Register)},
		}
	}
	links := []Link{{Label: "Profile", Route: RouteFor(Profile)}}
	if g.IsAdmin() {
		links = append(links,
			Link{Label: "Employees", Route: RouteFor(Employees)},
			Link{Label: "Accounts", Route: RouteFor(Accounts)},
			Link{Label: "Departments", Route: RouteFor(Departments)},
		)
	}
	return append(links,
		Link{Label: "My Requests", Route: RouteFor(Requests)},
		Link{Label: "Logout", Route: "/logout"},
	)
}
