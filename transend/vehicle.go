package transend

import (
	"context"
)

type vehicleAPI struct {
	c *Client
}

func (v *vehicleAPI) GetAllDTCs(ctx context.Context) (any, error) {
	return v.c.get(ctx, "vehicle.dtcs", "/api/Vehicle/DTCs", nil)
}

func (v *vehicleAPI) GetDriveTypesByVHID(ctx context.Context, vhid string) (any, error) {
	return v.byVHID(ctx, "vehicle.drive_types", vhid, "DriveTypes")
}

func (v *vehicleAPI) GetEnginesByVHID(ctx context.Context, vhid string) (any, error) {
	return v.byVHID(ctx, "vehicle.engines", vhid, "Engines")
}

func (v *vehicleAPI) GetMakesByVHID(ctx context.Context, vhid string) (any, error) {
	return v.byVHID(ctx, "vehicle.makes", vhid, "Makes")
}

func (v *vehicleAPI) GetModelsByVHID(ctx context.Context, vhid string) (any, error) {
	return v.byVHID(ctx, "vehicle.models", vhid, "Models")
}

func (v *vehicleAPI) GetSubmodelsByVHID(ctx context.Context, vhid string) (any, error) {
	return v.byVHID(ctx, "vehicle.submodels", vhid, "Submodels")
}

func (v *vehicleAPI) byVHID(ctx context.Context, op, vhid, resource string) (any, error) {
	return v.c.get(ctx, op, "/api/Vehicle/"+segment(vhid)+"/"+resource, nil)
}

func (v *vehicleAPI) GetTransmissions(ctx context.Context, tagNumber, transmissionMfrCode *string) (any, error) {
	q := queryOf("tagNumber", tagNumber, "transmissionMfrCode", transmissionMfrCode)
	return v.c.get(ctx, "vehicle.transmissions", "/api/Vehicle/Transmissions", q)
}

func (v *vehicleAPI) GetVehicleByVHID(ctx context.Context, vhid string) (any, error) {
	return v.c.get(ctx, "vehicle.by_vhid", "/api/Vehicle/"+segment(vhid), nil)
}

func (v *vehicleAPI) GetVehiclesByVIN(ctx context.Context, vin string) (any, error) {
	return v.c.get(ctx, "vehicle.by_vin", "/api/Vehicle/VIN/"+segment(vin), nil)
}

func (v *vehicleAPI) GetYears(ctx context.Context, vhid *string) (any, error) {
	return v.c.get(ctx, "vehicle.years", "/api/Vehicle/Years", queryOf("vhid", vhid))
}

func (v *vehicleAPI) GetYearMakeModelVHID(ctx context.Context, year int, makeName, model string) (any, error) {
	q := queryOf("year", year, "make", makeName, "model", model)
	return v.c.get(ctx, "vehicle.ymm_vhid", "/api/Vehicle/Vhid", q)
}
