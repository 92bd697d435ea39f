package quote

import "github.com/mariechen/ticked/internal/domain"

// fallbackQuotes is the fixed in-process table used whenever the remote
// service cannot produce a quote. Every tone has at least three entries
// so the fallback never repeats back-to-back too obviously.
var fallbackQuotes = map[domain.Tone][]Quote{
	domain.ToneMotivational: {
		{Text: "Discipline beats motivation.", Author: "Unknown"},
		{Text: "Small progress is still progress.", Author: "Unknown"},
		{Text: "You do not need to be extreme, just consistent.", Author: "Unknown"},
	},
	domain.ToneReflective: {
		{Text: "Quiet growth is still growth.", Author: "Unknown"},
		{Text: "Rest is part of the journey, not a break from it.", Author: "Unknown"},
		{Text: "What you water today becomes tomorrow's peace.", Author: "Unknown"},
	},
	domain.ToneCelebratory: {
		{Text: "Great job. Completed tasks are promises kept to yourself.", Author: "Unknown"},
		{Text: "Done is beautiful. Celebrate your consistency.", Author: "Unknown"},
		{Text: "Momentum is built one completed task at a time.", Author: "Unknown"},
	},
}

func fallbackFor(tone domain.Tone, pick func(n int) int) Quote {
	list, ok := fallbackQuotes[tone]
	if !ok {
		list = fallbackQuotes[domain.ToneMotivational]
	}
	return list[pick(len(list))]
}
