package catalog

import "fjacquet/subscan/internal/models"

// All is the catalog of known services, grouped by category. Order matters:
// earlier entries win length ties during matching.
var All = []Service{
	// Streaming
	{Names: []string{"Netflix", "NETFLIX"}, Domain: "netflix.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Disney+", "Disney Plus", "DISNEY+"}, Domain: "disneyplus.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Hulu", "HULU"}, Domain: "hulu.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"HBO Max", "HBO", "Max"}, Domain: "max.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Amazon Prime", "Prime Video", "Amazon Prime Video"}, Domain: "amazon.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleYearly},
	{Names: []string{"Apple TV+", "Apple TV Plus"}, Domain: "tv.apple.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Paramount+", "Paramount Plus"}, Domain: "paramountplus.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Peacock", "Peacock Premium"}, Domain: "peacocktv.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Crunchyroll", "CRUNCHYROLL"}, Domain: "crunchyroll.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"YouTube Premium", "YouTube Music", "YouTube TV"}, Domain: "youtube.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Twitch", "Twitch Turbo"}, Domain: "twitch.tv", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},

	// Chinese streaming
	{Names: []string{"爱奇艺", "iQIYI", "iQiyi", "IQIYI"}, Domain: "iqiyi.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"腾讯视频", "Tencent Video"}, Domain: "v.qq.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"优酷", "Youku", "YOUKU"}, Domain: "youku.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"芒果TV", "MangoTV"}, Domain: "mgtv.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"哔哩哔哩", "bilibili", "B站", "Bilibili"}, Domain: "bilibili.com", Category: models.CategoryStreaming, DefaultCycle: models.CycleMonthly},

	// Music
	{Names: []string{"Spotify", "SPOTIFY", "Spotify Premium"}, Domain: "spotify.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Apple Music"}, Domain: "music.apple.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Tidal", "TIDAL"}, Domain: "tidal.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Deezer", "DEEZER"}, Domain: "deezer.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"网易云音乐", "NetEase Music", "NetEase Cloud Music"}, Domain: "music.163.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"QQ音乐", "QQ Music"}, Domain: "y.qq.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},
	{Names: []string{"SoundCloud", "SoundCloud Go"}, Domain: "soundcloud.com", Category: models.CategoryMusic, DefaultCycle: models.CycleMonthly},

	// AI
	{Names: []string{"ChatGPT", "ChatGPT Plus", "OpenAI"}, Domain: "openai.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Claude", "Claude Pro", "Anthropic"}, Domain: "anthropic.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Midjourney", "MidJourney", "MIDJOURNEY"}, Domain: "midjourney.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"GitHub Copilot", "Copilot"}, Domain: "github.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Cursor", "Cursor Pro"}, Domain: "cursor.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Perplexity", "Perplexity Pro"}, Domain: "perplexity.ai", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Gemini", "Google Gemini", "Gemini Advanced"}, Domain: "gemini.google.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Poe", "Poe Premium"}, Domain: "poe.com", Category: models.CategoryAI, DefaultCycle: models.CycleMonthly},

	// Software
	{Names: []string{"Adobe", "Adobe Creative Cloud", "Creative Cloud", "Photoshop", "Lightroom", "Illustrator", "Premiere Pro"}, Domain: "adobe.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Microsoft 365", "Office 365", "Microsoft Office"}, Domain: "microsoft.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"JetBrains", "IntelliJ", "WebStorm", "PyCharm", "PhpStorm"}, Domain: "jetbrains.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"1Password", "1password"}, Domain: "1password.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"LastPass", "Lastpass"}, Domain: "lastpass.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"Dashlane"}, Domain: "dashlane.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"Setapp", "SETAPP"}, Domain: "setapp.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"CleanMyMac", "CleanMyMac X"}, Domain: "macpaw.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},

	// Cloud storage
	{Names: []string{"iCloud", "iCloud+", "Apple iCloud"}, Domain: "icloud.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Google One", "Google Drive", "Google Storage"}, Domain: "one.google.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Dropbox", "Dropbox Plus", "Dropbox Professional"}, Domain: "dropbox.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},
	{Names: []string{"OneDrive", "Microsoft OneDrive"}, Domain: "onedrive.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Box", "Box.com"}, Domain: "box.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},
	{Names: []string{"百度网盘", "Baidu Pan", "百度云"}, Domain: "pan.baidu.com", Category: models.CategoryCloudStorage, DefaultCycle: models.CycleMonthly},

	// Productivity
	{Names: []string{"Notion", "NOTION", "Notion Plus", "Notion AI"}, Domain: "notion.so", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Figma", "FIGMA", "Figma Professional"}, Domain: "figma.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Slack", "SLACK", "Slack Pro"}, Domain: "slack.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Linear", "LINEAR"}, Domain: "linear.app", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Todoist", "Todoist Pro"}, Domain: "todoist.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleYearly},
	{Names: []string{"Trello", "Trello Premium"}, Domain: "trello.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Asana", "Asana Premium"}, Domain: "asana.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Monday.com", "Monday"}, Domain: "monday.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Canva", "Canva Pro"}, Domain: "canva.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Miro", "Miro Board"}, Domain: "miro.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Evernote", "Evernote Premium"}, Domain: "evernote.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleYearly},
	{Names: []string{"Bear", "Bear Pro"}, Domain: "bear.app", Category: models.CategoryProductivity, DefaultCycle: models.CycleYearly},
	{Names: []string{"Craft", "Craft Pro"}, Domain: "craft.do", Category: models.CategoryProductivity, DefaultCycle: models.CycleYearly},

	// Education
	{Names: []string{"Coursera", "Coursera Plus"}, Domain: "coursera.org", Category: models.CategoryEducation, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Udemy"}, Domain: "udemy.com", Category: models.CategoryEducation, DefaultCycle: models.CycleOneTime},
	{Names: []string{"Skillshare", "Skillshare Premium"}, Domain: "skillshare.com", Category: models.CategoryEducation, DefaultCycle: models.CycleYearly},
	{Names: []string{"MasterClass", "Masterclass"}, Domain: "masterclass.com", Category: models.CategoryEducation, DefaultCycle: models.CycleYearly},
	{Names: []string{"Duolingo", "Duolingo Plus", "Duolingo Super"}, Domain: "duolingo.com", Category: models.CategoryEducation, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Brilliant", "Brilliant Premium"}, Domain: "brilliant.org", Category: models.CategoryEducation, DefaultCycle: models.CycleYearly},

	// News
	{Names: []string{"The New York Times", "NYT", "NY Times", "New York Times"}, Domain: "nytimes.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},
	{Names: []string{"The Washington Post", "Washington Post"}, Domain: "washingtonpost.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},
	{Names: []string{"The Wall Street Journal", "WSJ", "Wall Street Journal"}, Domain: "wsj.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},
	{Names: []string{"The Economist", "Economist"}, Domain: "economist.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Medium", "Medium Premium"}, Domain: "medium.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Substack"}, Domain: "substack.com", Category: models.CategoryNews, DefaultCycle: models.CycleMonthly},

	// Gaming
	{Names: []string{"Xbox Game Pass", "Game Pass", "Xbox Live", "Xbox Gold"}, Domain: "xbox.com", Category: models.CategoryGaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"PlayStation Plus", "PS Plus", "PS+", "PlayStation Now"}, Domain: "playstation.com", Category: models.CategoryGaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Nintendo Switch Online", "Nintendo Online"}, Domain: "nintendo.com", Category: models.CategoryGaming, DefaultCycle: models.CycleYearly},
	{Names: []string{"Apple Arcade"}, Domain: "apple.com/apple-arcade", Category: models.CategoryGaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"EA Play", "EA Access"}, Domain: "ea.com", Category: models.CategoryGaming, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Steam"}, Domain: "store.steampowered.com", Category: models.CategoryGaming, DefaultCycle: models.CycleOneTime},

	// Fitness
	{Names: []string{"Apple Fitness+", "Apple Fitness Plus", "Fitness+"}, Domain: "apple.com/apple-fitness-plus", Category: models.CategoryFitness, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Peloton", "Peloton Digital"}, Domain: "onepeloton.com", Category: models.CategoryFitness, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Strava", "Strava Premium"}, Domain: "strava.com", Category: models.CategoryFitness, DefaultCycle: models.CycleMonthly},
	{Names: []string{"MyFitnessPal", "MyFitnessPal Premium"}, Domain: "myfitnesspal.com", Category: models.CategoryFitness, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Headspace", "Headspace Plus"}, Domain: "headspace.com", Category: models.CategoryFitness, DefaultCycle: models.CycleYearly},
	{Names: []string{"Calm", "Calm Premium"}, Domain: "calm.com", Category: models.CategoryFitness, DefaultCycle: models.CycleYearly},
	{Names: []string{"Keep", "Keep Premium"}, Domain: "keep.com", Category: models.CategoryFitness, DefaultCycle: models.CycleMonthly},

	// Finance
	{Names: []string{"Robinhood", "Robinhood Gold"}, Domain: "robinhood.com", Category: models.CategoryFinance, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Revolut", "Revolut Premium", "Revolut Metal"}, Domain: "revolut.com", Category: models.CategoryFinance, DefaultCycle: models.CycleMonthly},
	{Names: []string{"YNAB", "You Need A Budget"}, Domain: "ynab.com", Category: models.CategoryFinance, DefaultCycle: models.CycleYearly},
	{Names: []string{"Mint", "Mint Premium"}, Domain: "mint.com", Category: models.CategoryFinance, DefaultCycle: models.CycleMonthly},

	// VPN & security
	{Names: []string{"NordVPN", "Nord VPN"}, Domain: "nordvpn.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"ExpressVPN", "Express VPN"}, Domain: "expressvpn.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},
	{Names: []string{"Surfshark", "SurfShark"}, Domain: "surfshark.com", Category: models.CategorySoftware, DefaultCycle: models.CycleYearly},

	// Developer / cloud
	{Names: []string{"GitHub", "GitHub Pro", "GitHub Team"}, Domain: "github.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"GitLab", "GitLab Premium"}, Domain: "gitlab.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Vercel", "Vercel Pro"}, Domain: "vercel.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Netlify", "Netlify Pro"}, Domain: "netlify.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"AWS", "Amazon Web Services"}, Domain: "aws.amazon.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Heroku", "Heroku Pro"}, Domain: "heroku.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"DigitalOcean", "Digital Ocean"}, Domain: "digitalocean.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Cloudflare", "Cloudflare Pro"}, Domain: "cloudflare.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},

	// Design
	{Names: []string{"Sketch", "Sketch Pro"}, Domain: "sketch.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleYearly},
	{Names: []string{"Framer", "Framer Pro"}, Domain: "framer.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"InVision", "Invision"}, Domain: "invisionapp.com", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},

	// Communication
	{Names: []string{"Zoom", "Zoom Pro", "Zoom Workplace"}, Domain: "zoom.us", Category: models.CategoryProductivity, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Discord", "Discord Nitro", "Nitro"}, Domain: "discord.com", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
	{Names: []string{"Telegram", "Telegram Premium"}, Domain: "telegram.org", Category: models.CategorySoftware, DefaultCycle: models.CycleMonthly},
}
