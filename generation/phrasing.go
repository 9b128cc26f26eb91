package generation

import "github.com/coreybb/storyboard/models"

// Phrasing is declarative: one table per brief axis, combined by the stages.
// Adding a style, tone or audience means adding a row here, not a branch.

type styleProfile struct {
	titles        []string // %s = topic (title case)
	angle         string   // %s = topic
	beats         []string // section titles in narrative order, %s = topic
	closingBeat   string   // always the last section, %s = topic
	broll         []string // %s = topic
	look          string   // visual language for image prompts
	introOnScreen string
	fps           int
	aspect        models.AspectRatio
	captionsOn    bool
	captionPos    models.CaptionPosition
	musicDB       int
}

// toneProfile.captionStyle, when set, overrides the audience caption style.
type toneProfile struct {
	hooks        []string // %s = topic
	leads        []string // %s = section title
	outroLine    string   // %s = topic
	cta          string
	musicMood    string
	stings       []string
	breakMs      int
	rate         string
	emphasis     string
	thumbAccent  string
	captionStyle models.CaptionStyle
}

type audienceProfile struct {
	label      string
	valueProps []string // %s = topic
	bullets    []string // %s = topic
	depth      string
	captions   models.CaptionStyle
}

var styleProfiles = map[models.VideoStyle]styleProfile{
	models.VideoStyleEducational: {
		titles: []string{"%s Explained", "Understanding %s", "%s: The Essentials", "How %s Actually Works"},
		angle:  "A clear, structured walkthrough of %s that builds understanding one idea at a time",
		beats: []string{
			"What %s Really Is", "The Core Building Blocks", "How It Works Step by Step", "A Worked Example",
			"Common Misconceptions", "Where %s Shows Up in Practice", "Going One Level Deeper", "Key Trade-offs",
			"Tools and Resources", "Mistakes to Avoid", "How to Keep Learning",
		},
		closingBeat:   "Putting %s Together",
		broll:         []string{"animated diagram of %s", "whiteboard sketch of the key idea", "close-up of hands taking notes", "screen recording of a live demo", "labelled infographic"},
		look:          "clean editorial illustration, soft studio lighting, high clarity",
		introOnScreen: "Let's learn",
		fps:           30,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    true,
		captionPos:    models.CaptionPositionBottom,
		musicDB:       -18,
	},
	models.VideoStyleStorytelling: {
		titles: []string{"The Story of %s", "How %s Changed Everything", "%s: A Story Worth Telling", "Inside the World of %s"},
		angle:  "A narrative journey through %s, told through moments, tension and payoff",
		beats: []string{
			"Where It All Began", "The First Turning Point", "Rising Stakes", "The Unexpected Twist",
			"The People Behind %s", "The Hardest Moment", "A Breakthrough", "What Changed Afterwards",
			"The Ripple Effect", "Lessons Hidden in the Story", "Looking Back",
		},
		closingBeat:   "What %s Means Today",
		broll:         []string{"archival-style footage evoking %s", "slow push-in on a meaningful object", "silhouette walking at golden hour", "hand-written journal pages", "wide establishing landscape"},
		look:          "warm cinematic color grade, shallow depth of field, storybook atmosphere",
		introOnScreen: "A story about",
		fps:           24,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    true,
		captionPos:    models.CaptionPositionBottom,
		musicDB:       -16,
	},
	models.VideoStyleCinematic: {
		titles: []string{"%s", "%s: A Visual Journey", "The Beauty of %s", "Beyond %s"},
		angle:  "An atmospheric, image-first exploration of %s where visuals carry the meaning",
		beats: []string{
			"Opening Atmosphere", "First Glimpse of %s", "Texture and Detail", "Scale and Perspective",
			"Motion", "Contrast", "Stillness", "The Human Element",
			"Light and Shadow", "The Crescendo", "Afterglow",
		},
		closingBeat:   "A Final Look at %s",
		broll:         []string{"sweeping drone shot themed around %s", "macro detail shot", "slow-motion movement", "long lens compression shot", "night time-lapse"},
		look:          "anamorphic widescreen, dramatic volumetric light, rich contrast, film grain",
		introOnScreen: "",
		fps:           24,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    false,
		captionPos:    models.CaptionPositionBottom,
		musicDB:       -14,
	},
	models.VideoStyleListicle: {
		titles: []string{"Top Facts About %s", "Things Nobody Tells You About %s", "%s: What You Need to Know", "The Best of %s, Ranked"},
		angle:  "A fast-paced countdown of the most useful things to know about %s",
		beats: []string{
			"The Surprising Basics", "The Overlooked Detail", "The Fan Favourite", "The Myth Buster",
			"The Quick Win", "The Expert Secret", "The Hidden Cost", "The Game Changer",
			"The Underrated Pick", "The Wildcard", "The Honourable Mention",
		},
		closingBeat:   "The Number One Thing About %s",
		broll:         []string{"bold number graphic over %s imagery", "quick-cut montage", "split-screen comparison", "pop-up icon animation", "reaction-style close-up"},
		look:          "bright high-saturation palette, bold graphic shapes, punchy composition",
		introOnScreen: "Counting down",
		fps:           30,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    true,
		captionPos:    models.CaptionPositionCenter,
		musicDB:       -16,
	},
	models.VideoStyleTutorial: {
		titles: []string{"%s Tutorial", "How to Get Started With %s", "%s Step by Step", "Master %s"},
		angle:  "A hands-on, follow-along guide to %s with concrete steps you can repeat",
		beats: []string{
			"What You Will Need", "Setting Up", "Step One: The Foundation", "Step Two: Building On It",
			"Step Three: Refining", "Checking Your Work", "Fixing Common Problems", "A Faster Workflow",
			"Going Further With %s", "Pro Tips", "Review",
		},
		closingBeat:   "Your Next Steps With %s",
		broll:         []string{"over-the-shoulder screen capture of %s", "top-down desk shot of the setup", "cursor highlight on the key control", "before-and-after comparison", "checklist graphic"},
		look:          "tidy workspace, neutral background, crisp product-style lighting",
		introOnScreen: "Follow along",
		fps:           30,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    true,
		captionPos:    models.CaptionPositionBottom,
		musicDB:       -20,
	},
	models.VideoStyleNews: {
		titles: []string{"%s: What Just Happened", "%s Explained in Minutes", "The Latest on %s", "Why %s Matters Right Now"},
		angle:  "A concise briefing on %s covering what happened, why it matters and what comes next",
		beats: []string{
			"The Headline", "The Background", "Key Facts", "Who Is Affected",
			"What Experts Say", "The Numbers", "Reactions", "Open Questions",
			"What to Watch For", "The Bigger Picture", "Timeline Recap",
		},
		closingBeat:   "What Comes Next for %s",
		broll:         []string{"newsroom-style lower third about %s", "data chart animation", "map highlight graphic", "press conference style wide shot", "headline ticker overlay"},
		look:          "photojournalistic realism, neutral color grade, documentary framing",
		introOnScreen: "Breaking down",
		fps:           30,
		aspect:        models.AspectRatioLandscape,
		captionsOn:    true,
		captionPos:    models.CaptionPositionBottom,
		musicDB:       -22,
	},
}

var toneProfiles = map[models.Tone]toneProfile{
	models.ToneFriendly: {
		hooks:       []string{"Ever wondered how %s really works? You're in the right place.", "If %s has ever confused you, stick around.", "Let's make %s feel simple together."},
		leads:       []string{"Next up: %s.", "Let's look at %s.", "Here's where it gets fun: %s."},
		outroLine:   "That's %s in a nutshell, and you made it to the end.",
		cta:         "If this helped, give it a like and tell me in the comments what you want to explore next.",
		musicMood:   "warm acoustic",
		stings:      []string{"soft pop on title", "light whoosh on transition", "gentle chime on key point"},
		breakMs:     700,
		rate:        "medium",
		emphasis:    "moderate",
		thumbAccent: "bright friendly colors",
	},
	models.ToneAuthoritative: {
		hooks:       []string{"Most explanations of %s miss the point. This one won't.", "Here is what you actually need to know about %s.", "%s, explained precisely and without filler."},
		leads:       []string{"Consider %s.", "The next point is %s.", "Now, %s."},
		outroLine:   "You now have a solid command of %s.",
		cta:         "Subscribe for more in-depth breakdowns.",
		musicMood:   "steady orchestral",
		stings:      []string{"low impact hit on title", "clean swipe on transition", "subtle riser before key fact"},
		breakMs:     600,
		rate:        "medium",
		emphasis:    "strong",
		thumbAccent: "confident high-contrast palette",
	},
	models.ToneHumorous: {
		hooks:        []string{"%s: easier than assembling flat-pack furniture. Probably.", "Buckle up, because %s is about to get weirdly entertaining.", "I promised my editor I'd explain %s without a single pun. Let's see."},
		leads:        []string{"Plot twist: %s.", "Okay, %s. Stay with me.", "And now, the moment nobody asked for: %s."},
		outroLine:    "And that's %s, with only minor emotional damage.",
		cta:          "Hit like if you laughed, subscribe if you learned something, do both if you're feeling generous.",
		musicMood:    "playful pizzicato",
		stings:       []string{"cartoon boing on title", "record scratch on twist", "rimshot after punchline"},
		breakMs:      500,
		rate:         "fast",
		emphasis:     "strong",
		thumbAccent:  "playful exaggerated expression",
		captionStyle: models.CaptionStyleKaraoke,
	},
	models.ToneInspiring: {
		hooks:       []string{"%s can change the way you see the world.", "What if %s was the skill that unlocked your next chapter?", "Every expert in %s started exactly where you are now."},
		leads:       []string{"Now imagine %s.", "This is where it comes alive: %s.", "Take a breath. %s."},
		outroLine:   "%s is within your reach, and you've already started.",
		cta:         "Share this with someone who needs the push, and subscribe for more.",
		musicMood:   "uplifting piano build",
		stings:      []string{"swelling pad under title", "soft riser into each section", "shimmer on key insight"},
		breakMs:     800,
		rate:        "slow",
		emphasis:    "moderate",
		thumbAccent: "golden uplifting light",
	},
	models.ToneCasual: {
		hooks:        []string{"So, %s. Let's just get into it.", "Quick one today: %s.", "Been meaning to talk about %s for a while."},
		leads:        []string{"Alright, %s.", "So, %s.", "Moving on: %s."},
		outroLine:    "Anyway, that's %s.",
		cta:          "Catch you in the next one, and drop a comment if you've got questions.",
		musicMood:    "lo-fi chill",
		stings:       []string{"vinyl crackle bed", "soft swoosh on cut", "tape stop on transition"},
		breakMs:      600,
		rate:         "medium",
		emphasis:     "reduced",
		thumbAccent:  "relaxed candid framing",
		captionStyle: models.CaptionStyleKaraoke,
	},
	models.ToneFormal: {
		hooks:       []string{"This presentation examines %s.", "The following is an overview of %s.", "We begin with a structured look at %s."},
		leads:       []string{"Section: %s.", "We now turn to %s.", "The subsequent topic is %s."},
		outroLine:   "This concludes the overview of %s.",
		cta:         "Further resources are listed in the description.",
		musicMood:   "minimal ambient",
		stings:      []string{"subtle tone on title", "clean dissolve on transition", "soft click on list items"},
		breakMs:     900,
		rate:        "slow",
		emphasis:    "moderate",
		thumbAccent: "restrained professional palette",
	},
}

var audienceProfiles = map[models.AudienceLevel]audienceProfile{
	models.AudienceBeginner: {
		label: "Beginner",
		valueProps: []string{
			"Understand %s without any prior background",
			"Learn the key vocabulary in plain language",
			"See simple, concrete examples",
			"Know exactly what to learn next",
		},
		bullets: []string{
			"explain the idea in everyday words",
			"show a simple example viewers can picture",
			"point out the one thing to remember",
			"flag a common beginner mistake",
			"connect it back to %s as a whole",
		},
		depth:    "for complete beginners",
		captions: models.CaptionStyleBoxed,
	},
	models.AudienceIntermediate: {
		label: "Intermediate",
		valueProps: []string{
			"Fill the gaps in what you already know about %s",
			"Connect concepts into a working mental model",
			"Pick up practical techniques you can apply today",
			"Avoid the mistakes that stall progress",
		},
		bullets: []string{
			"connect it to what viewers already know",
			"walk through a realistic use case",
			"compare two common approaches",
			"highlight a practical technique",
			"show how it fits into %s",
		},
		depth:    "for people with some experience",
		captions: models.CaptionStyleHighlight,
	},
	models.AudienceAdvanced: {
		label: "Advanced",
		valueProps: []string{
			"Go beyond the basics of %s",
			"Examine edge cases and trade-offs",
			"Sharpen your intuition with expert-level detail",
			"Leave with ideas to push your own work further",
		},
		bullets: []string{
			"examine the underlying mechanics",
			"discuss an edge case and its trade-offs",
			"reference how practitioners handle it",
			"challenge a widely held assumption",
			"relate it to the frontier of %s",
		},
		depth:    "for experienced practitioners",
		captions: models.CaptionStyleHighlight,
	},
}

// uploadChecklist is fixed; %s = title.
var uploadChecklist = []string{
	"Confirm the final title reads well: \"%s\"",
	"Upload the thumbnail and check it at small sizes",
	"Paste the description and verify chapter timestamps",
	"Add tags and keywords",
	"Upload or review captions for accuracy",
	"Add end screen and cards",
	"Set visibility, audience and category settings",
	"Schedule or publish, then share the link",
}
