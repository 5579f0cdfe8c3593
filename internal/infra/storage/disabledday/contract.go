package disabledday

import "github.com/m04kA/RestaurantBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
