package helpers

import "github.com/tubedash/web-ui/models"

type MenuItem struct {
	Mode      models.AppMode
	Title     string
	TargetURL string
	Active    bool
}

type Menu []MenuItem

var baseMenu = Menu{
	{models.AppModeDownloader, "Downloader", "/", false},
	{models.AppModeAIOptimizer, "AI Optimizer", "/optimizer", false},
}

// ModeByPath maps a request path to the screen it renders.
func ModeByPath(path string) models.AppMode {
	for _, item := range baseMenu {
		if item.TargetURL == path {
			return item.Mode
		}
	}
	return models.AppModeDownloader
}

type MenuHelper struct{}

func NewMenuHelper() *MenuHelper {
	return &MenuHelper{}
}

func (s *MenuHelper) MakeMenu(path string) Menu {
	mode := ModeByPath(path)
	m := Menu{}
	for _, item := range baseMenu {
		nm := item
		if item.Mode == mode {
			nm.Active = true
		}
		m = append(m, nm)
	}
	return m
}
