// Package modules assembles the topic handlers into the reply cascade.
//
// Evaluation order is significant. Gated handlers run only while no reply
// exists; the campus-life handler and the contact chain are overrides and
// replace any earlier reply; the timing handler is chained behind placement
// statistics and runs unless statistics answered.
package modules

import (
	"context"
	"time"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/intent"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
	"github.com/srmist/campus-chat-go/internal/modules/admission"
	"github.com/srmist/campus-chat-go/internal/modules/campus"
	"github.com/srmist/campus-chat-go/internal/modules/campuslife"
	"github.com/srmist/campus-chat-go/internal/modules/contact"
	"github.com/srmist/campus-chat-go/internal/modules/fallback"
	"github.com/srmist/campus-chat-go/internal/modules/fees"
	"github.com/srmist/campus-chat-go/internal/modules/hostel"
	"github.com/srmist/campus-chat-go/internal/modules/placement"
	"github.com/srmist/campus-chat-go/internal/modules/timing"
)

// Deps are the shared dependencies of the topic handlers.
type Deps struct {
	Base     *knowledge.Base
	Matcher  *fuzzy.Matcher   // defaults to fuzzy.Default()
	Location *time.Location   // timezone for admission day counts; defaults to UTC
	Logger   *logger.Logger   // optional
	Metrics  *metrics.Metrics // optional
}

// Cascade is an assembled registry together with its catch-all handler.
type Cascade struct {
	Registry *bot.Registry
	Fallback *fallback.Handler
}

// FallbackFunc adapts the catch-all for bot.ProcessorConfig.
func (c *Cascade) FallbackFunc() func(bot.Query) bot.Reply {
	return func(q bot.Query) bot.Reply {
		return c.Fallback.Reply(context.Background(), q)
	}
}

// Build registers every topic handler in evaluation order.
func Build(d Deps) *Cascade {
	if d.Base == nil {
		d.Base = knowledge.Default()
	}
	if d.Matcher == nil {
		d.Matcher = fuzzy.Default()
	}
	if d.Location == nil {
		d.Location = time.UTC
	}

	base, matcher := d.Base, d.Matcher
	reg := bot.NewRegistry(d.Logger, d.Metrics)
	if d.Logger != nil {
		reg.Use(bot.LoggingMiddleware(d.Logger), bot.RecoveryMiddleware(d.Logger))
	}
	reg.Use(bot.MetricsMiddleware(d.Metrics))

	reg.Register(fees.NewHandler(base))
	reg.Register(admission.NewEligibilityHandler(base, matcher))
	reg.Register(admission.NewProcessHandler(base, matcher))
	reg.RegisterFailSoft(campus.NewDressCodeHandler(base, matcher))
	reg.Register(campus.NewCollegeInfoHandler(base))
	reg.Register(campus.NewCoursesHandler(base))
	reg.RegisterFailSoft(hostel.NewHandler(base, d.Logger))
	reg.Register(placement.NewInfoHandler(base))
	reg.RegisterChain(
		bot.Link{Handler: placement.NewStatsHandler(base)},
		bot.Link{Handler: timing.NewHandler(base), Override: true},
	)
	reg.Register(admission.NewStartHandler(base, d.Location))
	reg.Register(admission.NewDeadlineHandler(base, d.Location))
	reg.RegisterChain(bot.Link{Handler: campuslife.NewHandler(base), Override: true})
	reg.RegisterChain(
		bot.Link{Handler: contact.NewContactHandler(base), Override: true},
		bot.Link{Handler: contact.NewEntranceHandler(base), Override: true},
		bot.Link{Handler: contact.NewDepartmentHandler(base, matcher), Override: true},
	)

	fb := fallback.NewHandler(base, intent.NewClassifier(base.Intents, matcher), d.Logger, d.Metrics)
	reg.Register(fb)

	return &Cascade{Registry: reg, Fallback: fb}
}
