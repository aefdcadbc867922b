package gtfsfeed

const (
	DefaultFeedPublisherName = "Placeholder publisher name"
	DefaultFeedPublisherURL  = "http://placeholder-publisher-url.com"
	DefaultFeedLang          = "en"
)

func ensureFeedInfo(feedInfo *FeedInfo) *FeedInfo {
	if feedInfo != nil {
		return feedInfo
	}
	return &FeedInfo{
		FeedPublisherName: DefaultFeedPublisherName,
		FeedPublisherURL:  DefaultFeedPublisherURL,
		FeedLang:          DefaultFeedLang,
	}
}

// FeedInfo is never nil.
func (f *Feed) FeedInfo() *FeedInfo {
	return f.feedInfo
}

// SetFeedInfo replaces the feed info. A nil feedInfo restores the placeholder defaults.
func (f *Feed) SetFeedInfo(feedInfo *FeedInfo) {
	f.feedInfo = ensureFeedInfo(feedInfo)
}

func (f *Feed) FeedStartDate() string               { return f.feedInfo.FeedStartDate }
func (f *Feed) SetFeedStartDate(date string)        { f.feedInfo.FeedStartDate = date }
func (f *Feed) FeedEndDate() string                 { return f.feedInfo.FeedEndDate }
func (f *Feed) SetFeedEndDate(date string)          { f.feedInfo.FeedEndDate = date }
func (f *Feed) FeedVersion() string                 { return f.feedInfo.FeedVersion }
func (f *Feed) SetFeedVersion(version string)       { f.feedInfo.FeedVersion = version }
func (f *Feed) FeedContactURL() string              { return f.feedInfo.FeedContactURL }
func (f *Feed) SetFeedContactURL(contactURL string) { f.feedInfo.FeedContactURL = contactURL }
