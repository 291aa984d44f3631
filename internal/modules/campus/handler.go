// Package campus answers general institution questions: dress code,
// college overview and the course catalogue.
package campus

import (
	"context"
	"errors"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// Module names used in logs and metrics.
const (
	DressCodeModule   = "dress_code"
	CollegeInfoModule = "college_info"
	CoursesModule     = "courses"
)

var errNoDressCode = errors.New("campus: dress code text is empty")

var (
	collegeInfoEnglish = []string{
		"about college", "college details", "tell me about college",
		"about our college", "information about college", "college information",
	}
	collegeInfoTamil = []string{"கல்லூரி பற்றிய", "கல்லூரி விவரங்கள்"}

	coursesEnglish = []string{"courses", "arts"}
	coursesTamil   = []string{"பாடநெறிகள்"}
)

// DressCodeHandler answers dress code questions. It is registered fail-soft.
type DressCodeHandler struct {
	keywords []string
	text     string
	matcher  *fuzzy.Matcher
}

// NewDressCodeHandler creates a new dress code handler.
func NewDressCodeHandler(base *knowledge.Base, matcher *fuzzy.Matcher) *DressCodeHandler {
	return &DressCodeHandler{
		keywords: base.IntentKeywords(knowledge.IntentDressCode),
		text:     base.Texts.DressCode,
		matcher:  matcher,
	}
}

// Name returns the module name
func (h *DressCodeHandler) Name() string {
	return DressCodeModule
}

// CanHandle matches messages similar to a dress code keyword.
func (h *DressCodeHandler) CanHandle(q bot.Query) bool {
	return h.matcher.IsCloseMatch(q.Lower, h.keywords)
}

// HandleMessage returns the dress code block.
func (h *DressCodeHandler) HandleMessage(_ context.Context, _ bot.Query) (bot.Reply, error) {
	if h.text == "" {
		return bot.Reply{}, errNoDressCode
	}
	return bot.Text(h.text), nil
}

// CollegeInfoHandler answers "about the college" in either language. The
// Tamil block is already localized and is never machine translated.
type CollegeInfoHandler struct {
	texts knowledge.Texts
}

// NewCollegeInfoHandler creates a new college info handler.
func NewCollegeInfoHandler(base *knowledge.Base) *CollegeInfoHandler {
	return &CollegeInfoHandler{texts: base.Texts}
}

// Name returns the module name
func (h *CollegeInfoHandler) Name() string {
	return CollegeInfoModule
}

func (h *CollegeInfoHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, collegeInfoEnglish) ||
		textutil.ContainsAny(q.Lower, collegeInfoTamil)
}

func (h *CollegeInfoHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	if textutil.ContainsAny(q.Lower, collegeInfoTamil) {
		return bot.Localized(h.texts.CollegeInfoTamil), nil
	}
	return bot.Text(h.texts.CollegeInfoEnglish), nil
}

// CoursesHandler lists the programmes on offer.
type CoursesHandler struct {
	texts knowledge.Texts
}

// NewCoursesHandler creates a new courses handler.
func NewCoursesHandler(base *knowledge.Base) *CoursesHandler {
	return &CoursesHandler{texts: base.Texts}
}

// Name returns the module name
func (h *CoursesHandler) Name() string {
	return CoursesModule
}

func (h *CoursesHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, coursesEnglish) ||
		textutil.ContainsAny(q.Lower, coursesTamil)
}

func (h *CoursesHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	if textutil.ContainsAny(q.Lower, coursesTamil) {
		return bot.Localized(h.texts.CoursesTamil), nil
	}
	return bot.Text(h.texts.CoursesEnglish), nil
}
