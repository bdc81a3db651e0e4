package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The informational pages carry static content. Rendering is left to
// the frontend, the backend only serves the payloads.
type pageData struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

var pageContent = map[string]pageData{
	"landing": {
		Title: "Eng-Scholar",
		Sections: []string{
			"A community portal for engineering students",
			"Scholarships, internships, courses, projects, shared notes and a meme board",
			"Register or login to get started",
		},
	},
	"register": {
		Title:    "Register",
		Sections: []string{"Create an account with your name, email and a password"},
	},
	"login": {
		Title:    "Login",
		Sections: []string{"Login with your registered email and password"},
	},
	"dashboard": {
		Title: "Dashboard",
		Sections: []string{
			"Browse scholarships, internships, courses and projects",
			"Share notes with your branch under /notes",
			"Visit the meme board under /memes",
		},
	},
	"scholarships": {
		Title: "Scholarships",
		Sections: []string{
			"Merit and need based scholarships for engineering students",
			"Check eligibility and deadlines before applying",
		},
	},
	"internships": {
		Title: "Internships",
		Sections: []string{
			"Summer and semester internship openings",
			"Apply early, most positions close months in advance",
		},
	},
	"courses": {
		Title: "Courses",
		Sections: []string{
			"Curated online courses by branch",
			"Certificates count towards elective credits at many colleges",
		},
	},
	"projects": {
		Title: "Projects",
		Sections: []string{
			"Project ideas and past student submissions",
			"Team up with students from other branches",
		},
	},
}

func (a *API) PageLanding(c *gin.Context) {
	c.JSON(http.StatusOK, pageContent["landing"])
}

func (a *API) PageRegister(c *gin.Context) {
	c.JSON(http.StatusOK, pageContent["register"])
}

func (a *API) PageLogin(c *gin.Context) {
	page := pageContent["login"]

	// The gate and logout redirect here with an explanatory notice
	if notice := c.Query("notice"); notice != "" {
		c.JSON(http.StatusOK, gin.H{
			"title":    page.Title,
			"sections": page.Sections,
			"notice":   notice,
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (a *API) PageDashboard(c *gin.Context)    { a.servePage(c, "dashboard") }
func (a *API) PageScholarships(c *gin.Context) { a.servePage(c, "scholarships") }
func (a *API) PageInternships(c *gin.Context)  { a.servePage(c, "internships") }
func (a *API) PageCourses(c *gin.Context)      { a.servePage(c, "courses") }
func (a *API) PageProjects(c *gin.Context)     { a.servePage(c, "projects") }

func (a *API) servePage(c *gin.Context, name string) {
	page := pageContent[name]

	c.JSON(http.StatusOK, gin.H{
		"title":    page.Title,
		"sections": page.Sections,
		"welcome":  c.GetString("displayName"),
	})
}
