package site

import (
	"CorpSite/internal/countdown"
	"CorpSite/internal/hero"
)

type Core interface {
	Countdown() (*countdown.Parts, error)
	HeroState() (*hero.State, error)
}
