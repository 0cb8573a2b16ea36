package news

// sampleHeadlines возвращает статический набор заголовков для работы без сети.
func sampleHeadlines() []Item {
	return []Item{
		{
			Source:    "Economic Times",
			Title:     "Indian markets hit record high amid global rally",
			Link:      "https://economictimes.indiatimes.com",
			Sentiment: SentimentPositive,
		},
		{
			Source:    "Moneycontrol",
			Title:     "Buy Bajaj Finance; target of Rs 9000: Emkay Global Financial",
			Link:      "https://www.moneycontrol.com",
			Sentiment: SentimentPositive,
		},
		{
			Source:    "RBI",
			Title:     "RBI maintains repo rate at 6.5%",
			Link:      "https://www.rbi.org.in",
			Sentiment: SentimentNeutral,
		},
		{
			Source:    "Business Standard",
			Title:     "India's GDP growth forecast raised to 7.5% for FY25",
			Link:      "https://www.business-standard.com",
			Sentiment: SentimentPositive,
		},
		{
			Source:    "Economic Times",
			Title:     "Gold prices surge to record high amid global uncertainty",
			Link:      "https://economictimes.indiatimes.com",
			Sentiment: SentimentPositive,
		},
		{
			Source:    "Moneycontrol",
			Title:     "Mutual fund inflows hit 6-month high in equity schemes",
			Link:      "https://www.moneycontrol.com",
			Sentiment: SentimentPositive,
		},
		{
			Source:    "Business Standard",
			Title:     "Inflation eases to 4.8% in June, RBI may hold rates",
			Link:      "https://www.business-standard.com",
			Sentiment: SentimentNeutral,
		},
	}
}
