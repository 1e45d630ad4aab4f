package summarize

import (
	"strings"
)

// articleSentences is a 25 sentence news story with no boilerplate. Every
// sentence is 51-150 characters and 11-20 words long.
var articleSentences = []string{
	"The river town of Millbrook began rebuilding its flood defenses after the storms of last winter.",
	"Engineers estimate that the new levee will protect roughly 4,000 homes along the eastern bank.",
	"Construction crews started work in March and expect to finish the first section before autumn.",
	"Funding for the project came from a mix of state grants and a voter-approved local bond.",
	"Residents packed the community hall on Thursday evening to hear an update from the mayor.",
	"Several shop owners described how water reached the second shelf of their stores during the flood.",
	"The bakery on Main Street reopened only after six weeks of drying, repairs and new equipment.",
	"Insurance claims in the county rose sharply, according to figures released by regulators in May.",
	"Hydrologists at the state university have modeled how the river might behave in future storms.",
	"Their simulations suggest that peak water levels could rise by 30 centimeters within two decades.",
	"Wetland restoration upstream is being considered as a cheaper complement to concrete barriers.",
	"Farmers who own land near the proposed wetlands have asked for fair compensation and clear timelines.",
	"A pilot program will pay landowners to let selected fields absorb water during heavy rain events.",
	"School buses were rerouted for most of the spring because two bridges remained closed for inspection.",
	"Volunteers from neighboring towns helped clear debris and deliver meals to families in temporary housing.",
	"The local library now hosts a permanent exhibit of photographs documenting the damage and recovery.",
	"Historians note that Millbrook suffered similar floods in 1927 and again in the early 1960s.",
	"Each of those events prompted promises of better protection that were never fully delivered.",
	"This time officials say independent auditors will publish quarterly reports on spending and progress.",
	"Critics argue that the plan still underestimates the risk posed by rapid development on the floodplain.",
	"New zoning rules would restrict building permits in the lowest lying neighborhoods starting next year.",
	"Developers have warned that the rules could slow housing construction at a time of severe shortage.",
	"The council is expected to vote on the zoning proposal after a final round of public hearings.",
	"Meanwhile, the river has returned to its usual calm, drawing anglers and kayakers back to its banks.",
	"For many residents the sight of the water is still a reminder of how quickly their lives were upended.",
}

const navSentence = "Click here to subscribe to our newsletter for more updates today."

// buildArticle wraps sentences in a page with the usual chrome around the
// article body, five sentences per paragraph.
func buildArticle(sentences []string) string {
	var b strings.Builder
	b.WriteString(`<!doctype html><html><head><title>Millbrook rebuilds</title>`)
	b.WriteString(`<script>window.dataLayer = [];</script></head><body>`)
	b.WriteString(`<header><a href="/">Home</a> Read more stories</header>`)
	b.WriteString(`<nav><ul><li>World</li><li>Local</li><li>Sign up</li></ul></nav>`)
	b.WriteString(`<div class="ad-banner">Advertisement: the best deals of the season are here.</div>`)
	b.WriteString(`<article>`)
	for i := 0; i < len(sentences); i += 5 {
		end := i + 5
		if end > len(sentences) {
			end = len(sentences)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(sentences[i:end], " "))
		b.WriteString("</p>\n")
	}
	b.WriteString(`</article>`)
	b.WriteString(`<aside>Related: five tips for flood insurance.</aside>`)
	b.WriteString(`<div id="comments">Great article, thanks for sharing this with us.</div>`)
	b.WriteString(`<footer>Copyright 2024 Millbrook Gazette. Privacy policy.</footer>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

func withInserted(sentences []string, at int, s string) []string {
	out := make([]string, 0, len(sentences)+1)
	out = append(out, sentences[:at]...)
	out = append(out, s)
	return append(out, sentences[at:]...)
}
