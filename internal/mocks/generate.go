package mocks

//go:generate mockery --name TransactionStore --srcpkg github.com/aevon-lab/basket/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
