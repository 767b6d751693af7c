package repositories

// CrewPayDbRepository gathers all data access methods against the crewpay
// database. Usecases depend on narrow interfaces that this type satisfies.
type CrewPayDbRepository struct{}

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	CrewPayDbRepo      *CrewPayDbRepository
	PushNotificationer *PushNotificationRepository
}

type Option func(*options)

type options struct {
	notificationGatewayUrl string
}

func WithNotificationGateway(url string) Option {
	return func(o *options) {
		o.notificationGatewayUrl = url
	}
}

func NewRepositories(executorGetter ExecutorGetter, opts ...Option) Repositories {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return Repositories{
		ExecutorGetter:     executorGetter,
		CrewPayDbRepo:      &CrewPayDbRepository{},
		PushNotificationer: NewPushNotificationRepository(o.notificationGatewayUrl),
	}
}
