package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/Kermitroid/outterspace2/internal/services OutboxEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services VideoRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_counter_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services VideoCounterRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_library_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services LibraryRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_category_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services CategoryRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_category_cache.go -package=mocks github.com/Kermitroid/outterspace2/internal/services CategoryCache
//go:generate go run github.com/golang/mock/mockgen -destination=mock_comment_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services CommentRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_interaction_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services InteractionRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_history_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services HistoryRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_profile_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services ProfileRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_auth_repository.go -package=mocks github.com/Kermitroid/outterspace2/internal/services AuthRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_token_issuer.go -package=mocks github.com/Kermitroid/outterspace2/internal/services TokenIssuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_view_notifier.go -package=mocks github.com/Kermitroid/outterspace2/internal/services ViewNotifier
//go:generate go run github.com/golang/mock/mockgen -destination=mock_object_store.go -package=mocks github.com/Kermitroid/outterspace2/internal/services ObjectStore
