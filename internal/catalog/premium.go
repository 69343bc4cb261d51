package catalog

import (
	"github.com/yungbote/swipegen-backend/internal/types"
)

// premiumAITemplate is the flagship AI/tech teaser page. Its bonus rule
// favors profiles that lean modern/tech/minimal or carry a professional
// influence.
var premiumAITemplate = types.Template{
	ID:    "premium-ai-tech",
	Name:  "Premium AI Tech",
	Style: types.StylePremium,
	Variables: []string{
		// Hero
		"companyName",
		"heroTitle",
		"heroTitleLine2",
		"heroSubtitle",
		"ctaButtonText",
		// Problem
		"problemTitle1",
		"problemDesc1",
		"problemTitle2",
		"problemDesc2",
		"problemTitle3",
		"problemDesc3",
		// Solution
		"solutionTitle",
		"solutionSubtitle",
		"solutionFeature1",
		"solutionFeature2",
		"solutionFeature3",
		"solutionFeature4",
		// Results
		"stat1Number",
		"stat1Label",
		"stat2Number",
		"stat2Label",
		"stat3Number",
		"stat3Label",
		// CTA
		"ctaTitle",
		"ctaSubtitle",
		"ctaLink",
		// Profile
		"profileTitle",
		"profileContent",
		// FAQ
		"faq1Question",
		"faq1Answer",
		"faq2Question",
		"faq2Answer",
		"faq3Question",
		"faq3Answer",
		// Colors
		"primaryColor",
		"accentColor",
	},
	Bonus: func(p types.PreferenceProfile) int {
		for _, s := range p.Styles {
			switch s {
			case "modern", "tech", "minimal":
				return 50
			}
		}
		if p.Influence == types.InfluenceProfessional {
			return 50
		}
		return 0
	},
	HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{companyName}} - {{heroTitle}}</title>
    <meta name="description" content="{{heroSubtitle}}">
    <meta property="og:title" content="{{companyName}} - {{heroTitle}}">
    <meta property="og:description" content="{{heroSubtitle}}">
    <meta property="og:type" content="website">
    <style>{{{css}}}</style>
</head>
<body>
    <section class="hero">
        <canvas id="network-canvas"></canvas>
        <div class="hero-content">
            <div class="hero-brand">{{companyName}}</div>
            <h1 class="hero-title">{{heroTitle}}<br><span class="hero-title-accent">{{heroTitleLine2}}</span></h1>
            <p class="hero-subtitle">{{heroSubtitle}}</p>
            <a href="#cta" class="cta-button">{{ctaButtonText}}</a>
        </div>
    </section>

    <section class="problems reveal">
        <div class="section-inner">
            <div class="problem-card">
                <h3>{{problemTitle1}}</h3>
                <p>{{problemDesc1}}</p>
            </div>
            <div class="problem-card">
                <h3>{{problemTitle2}}</h3>
                <p>{{problemDesc2}}</p>
            </div>
            <div class="problem-card">
                <h3>{{problemTitle3}}</h3>
                <p>{{problemDesc3}}</p>
            </div>
        </div>
    </section>

    <section class="solution reveal">
        <div class="section-inner">
            <h2 class="section-title">{{solutionTitle}}</h2>
            <p class="section-subtitle">{{solutionSubtitle}}</p>
            <ul class="solution-features">
                <li>{{solutionFeature1}}</li>
                <li>{{solutionFeature2}}</li>
                <li>{{solutionFeature3}}</li>
                <li>{{solutionFeature4}}</li>
            </ul>
        </div>
    </section>

    <section class="results reveal">
        <div class="section-inner stats-grid">
            <div class="stat">
                <div class="stat-number">{{stat1Number}}</div>
                <div class="stat-label">{{stat1Label}}</div>
            </div>
            <div class="stat">
                <div class="stat-number">{{stat2Number}}</div>
                <div class="stat-label">{{stat2Label}}</div>
            </div>
            <div class="stat">
                <div class="stat-number">{{stat3Number}}</div>
                <div class="stat-label">{{stat3Label}}</div>
            </div>
        </div>
    </section>

    <section id="cta" class="cta-section reveal">
        <div class="section-inner">
            <h2>{{ctaTitle}}</h2>
            <p>{{ctaSubtitle}}</p>
            <a href="{{ctaLink}}" class="cta-button">{{ctaButtonText}}</a>
        </div>
    </section>

    <section class="profile reveal">
        <div class="section-inner">
            <h2 class="section-title">{{profileTitle}}</h2>
            <p>{{profileContent}}</p>
        </div>
    </section>

    <section class="faq reveal">
        <div class="section-inner">
            <details class="faq-item">
                <summary>{{faq1Question}}</summary>
                <p>{{faq1Answer}}</p>
            </details>
            <details class="faq-item">
                <summary>{{faq2Question}}</summary>
                <p>{{faq2Answer}}</p>
            </details>
            <details class="faq-item">
                <summary>{{faq3Question}}</summary>
                <p>{{faq3Answer}}</p>
            </details>
        </div>
    </section>

    <script>{{{js}}}</script>
</body>
</html>`,
	CSS: `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: #010a14;
    color: #eaf6ff;
    line-height: 1.7;
}

.hero {
    position: relative;
    min-height: 100vh;
    display: flex;
    align-items: center;
    justify-content: center;
    overflow: hidden;
    background: linear-gradient(160deg, #010a14 0%, rgba(0, 26, 51, 0.7) 50%, #010a14 100%);
}

#network-canvas {
    position: absolute;
    inset: 0;
    width: 100%;
    height: 100%;
}

.hero-content {
    position: relative;
    text-align: center;
    padding: 2rem;
    z-index: 1;
}

.hero-brand {
    font-size: 1.25rem;
    letter-spacing: 0.2em;
    text-transform: uppercase;
    color: {{accentColor}};
    margin-bottom: 2rem;
}

.hero-title {
    font-size: clamp(2.5rem, 7vw, 4.5rem);
    font-weight: 800;
    margin-bottom: 1.5rem;
}

.hero-title-accent {
    color: {{primaryColor}};
}

.hero-subtitle {
    font-size: clamp(1rem, 2.5vw, 1.35rem);
    opacity: 0.85;
    max-width: 640px;
    margin: 0 auto 2.5rem;
}

.cta-button {
    display: inline-block;
    background: linear-gradient(90deg, {{primaryColor}}, {{accentColor}});
    color: #fff;
    text-decoration: none;
    padding: 1rem 3rem;
    border-radius: 50px;
    font-size: 1.1rem;
    font-weight: 600;
    transition: transform 0.3s, box-shadow 0.3s;
}

.cta-button:hover {
    transform: translateY(-2px);
    box-shadow: 0 8px 30px rgba(0, 204, 255, 0.35);
}

.section-inner {
    max-width: 1000px;
    margin: 0 auto;
    padding: 5rem 2rem;
}

.section-title {
    font-size: 2.25rem;
    margin-bottom: 1rem;
    text-align: center;
}

.section-subtitle {
    text-align: center;
    opacity: 0.8;
    margin-bottom: 2.5rem;
}

.problems .section-inner {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(260px, 1fr));
    gap: 2rem;
}

.problem-card {
    background: rgba(255,255,255,0.04);
    border: 1px solid rgba(0, 204, 255, 0.2);
    border-radius: 12px;
    padding: 2rem;
    transition: transform 0.3s, border-color 0.3s;
}

.problem-card:hover {
    transform: translateY(-6px);
    border-color: {{primaryColor}};
}

.problem-card h3 {
    margin-bottom: 0.75rem;
    color: {{accentColor}};
}

.solution-features {
    list-style: none;
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
    gap: 1rem;
}

.solution-features li {
    padding: 1rem 1.25rem;
    background: rgba(0, 204, 255, 0.08);
    border-left: 3px solid {{primaryColor}};
    border-radius: 6px;
}

.stats-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
    gap: 2rem;
    text-align: center;
}

.stat-number {
    font-size: 3rem;
    font-weight: 800;
    color: {{primaryColor}};
}

.stat-label {
    opacity: 0.8;
}

.cta-section {
    text-align: center;
    background: linear-gradient(180deg, transparent, rgba(0, 26, 51, 0.6), transparent);
}

.cta-section h2 {
    font-size: 2rem;
    margin-bottom: 0.75rem;
}

.cta-section p {
    opacity: 0.85;
    margin-bottom: 2rem;
}

.profile p {
    max-width: 720px;
    margin: 0 auto;
    opacity: 0.9;
}

.faq-item {
    border-bottom: 1px solid rgba(255,255,255,0.12);
    padding: 1.25rem 0;
}

.faq-item summary {
    cursor: pointer;
    font-weight: 600;
    font-size: 1.05rem;
}

.faq-item p {
    margin-top: 0.75rem;
    opacity: 0.85;
}

.reveal {
    opacity: 0;
    transform: translateY(30px);
    transition: opacity 0.6s ease, transform 0.6s ease;
}

.reveal.visible {
    opacity: 1;
    transform: translateY(0);
}

@media (max-width: 768px) {
    .section-inner {
        padding: 3.5rem 1.25rem;
    }
}`,
	JS: `(function () {
    var canvas = document.getElementById('network-canvas');
    if (canvas && canvas.getContext) {
        var ctx = canvas.getContext('2d');
        var particles = [];
        var count = window.innerWidth < 768 ? 30 : 50;

        function resize() {
            canvas.width = canvas.offsetWidth;
            canvas.height = canvas.offsetHeight;
        }

        function init() {
            particles = [];
            for (var i = 0; i < count; i++) {
                particles.push({
                    x: Math.random() * canvas.width,
                    y: Math.random() * canvas.height,
                    vx: (Math.random() - 0.5) * 0.6,
                    vy: (Math.random() - 0.5) * 0.6
                });
            }
        }

        function step() {
            ctx.clearRect(0, 0, canvas.width, canvas.height);
            for (var i = 0; i < particles.length; i++) {
                var p = particles[i];
                p.x += p.vx;
                p.y += p.vy;
                if (p.x < 0 || p.x > canvas.width) p.vx = -p.vx;
                if (p.y < 0 || p.y > canvas.height) p.vy = -p.vy;
                ctx.fillStyle = 'rgba(0, 204, 255, 0.6)';
                ctx.beginPath();
                ctx.arc(p.x, p.y, 2, 0, Math.PI * 2);
                ctx.fill();
                for (var j = i + 1; j < particles.length; j++) {
                    var q = particles[j];
                    var dx = p.x - q.x;
                    var dy = p.y - q.y;
                    var dist = Math.sqrt(dx * dx + dy * dy);
                    if (dist < 150) {
                        ctx.strokeStyle = 'rgba(0, 204, 255, ' + (0.2 * (1 - dist / 150)) + ')';
                        ctx.beginPath();
                        ctx.moveTo(p.x, p.y);
                        ctx.lineTo(q.x, q.y);
                        ctx.stroke();
                    }
                }
            }
            requestAnimationFrame(step);
        }

        window.addEventListener('resize', function () { resize(); init(); });
        resize();
        init();
        step();
    }

    var observer = new IntersectionObserver(function (entries) {
        entries.forEach(function (entry) {
            if (entry.isIntersecting) {
                entry.target.classList.add('visible');
            }
        });
    }, { rootMargin: '0px 0px -50px 0px' });

    document.querySelectorAll('.reveal').forEach(function (el) {
        observer.observe(el);
    });
})();`,
}
