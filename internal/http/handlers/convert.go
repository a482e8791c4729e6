package handlers

import (
	"parcelpoint/internal/domain"
	pickupsvc "parcelpoint/internal/service/pickup"
	shipmentsvc "parcelpoint/internal/service/shipment"
)

func (req submitPickupRequest) toInput() pickupsvc.SubmitInput {
	return pickupsvc.SubmitInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		SenderEmail:    req.SenderEmail,
		ReceiverEmail:  req.ReceiverEmail,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		PackageDesc:    req.PackageDesc,
		WeightKg:       req.WeightKg,
		Notes:          req.Notes,
	}
}

func (req createShipmentRequest) toInput() shipmentsvc.CreateInput {
	return shipmentsvc.CreateInput{
		SenderName:     req.SenderName,
		SenderPhone:    req.SenderPhone,
		SenderEmail:    req.SenderEmail,
		ReceiverName:   req.ReceiverName,
		ReceiverPhone:  req.ReceiverPhone,
		ReceiverEmail:  req.ReceiverEmail,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		ETA:            req.ETA,
	}
}

func pickupToResponse(p domain.PickupRequest) pickupDTO {
	return pickupDTO{
		ID:             p.ID,
		FullName:       p.FullName,
		Phone:          p.Phone,
		PickupAddress:  p.PickupAddress,
		DropoffAddress: p.DropoffAddress,
		PackageDesc:    p.PackageDesc,
		WeightKg:       p.WeightKg,
		Notes:          p.Notes,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
	}
}

func pickupsToResponse(list []domain.PickupRequest) []pickupDTO {
	out := make([]pickupDTO, 0, len(list))
	for _, p := range list {
		out = append(out, pickupToResponse(p))
	}
	return out
}

func shipmentToResponse(s domain.Shipment) shipmentDTO {
	return shipmentDTO{
		TrackingID:     s.TrackingCode,
		CurrentStatus:  s.CurrentStatus,
		ETA:            s.ETA,
		PickupAddress:  s.PickupAddress,
		DropoffAddress: s.DropoffAddress,
		CreatedAt:      s.CreatedAt,
	}
}

func shipmentsToResponse(list []domain.Shipment) []shipmentDTO {
	out := make([]shipmentDTO, 0, len(list))
	for _, s := range list {
		out = append(out, shipmentToResponse(s))
	}
	return out
}

func trackViewToResponse(v domain.TrackView) trackShipmentDTO {
	eta := v.Shipment.ETA
	if eta == "" {
		eta = "TBD"
	}
	timeline := make([]timelineEntryDTO, 0, len(v.Timeline))
	for _, e := range v.Timeline {
		timeline = append(timeline, timelineEntryDTO{
			Status: e.Status,
			Time:   e.CreatedAt.Format("2006-01-02 15:04:05"),
			Note:   e.Note,
		})
	}
	return trackShipmentDTO{
		TrackingID: v.Shipment.TrackingCode,
		Current:    v.Shipment.CurrentStatus,
		ETA:        eta,
		Timeline:   timeline,
	}
}
